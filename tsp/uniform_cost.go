package tsp

// UniformCost runs best-first search over partial tours ordered by their
// accumulated cost g, starting from the prefix [0].
//
// Loop (until the frontier is empty):
//  1. Pop the node with the lowest (g, seq).
//  2. Full prefix → close the cycle and offer it to the incumbent.
//     The first completion popped is already optimal, but the frontier is
//     still drained; later completions only replace it if strictly cheaper.
//  3. Otherwise push one child per unvisited city, in increasing index,
//     with g' = g + cost(last, c).
//
// Prefixes that visit the same set in different orders are not merged.
//
// Errors: ErrNilModel, ErrExpansionLimit, ErrTimeLimit, ctx.Err() (WithContext).
//
// Complexity: O(N!·N) time and memory in the worst case.
func UniformCost(d Distances, opts ...Option) (Result, error) {
	if d == nil {
		return Result{}, ErrNilModel
	}
	cfg := buildOptions(opts)
	n := d.Len()
	if n == 0 {
		return Result{Algorithm: UCS}, nil
	}

	var (
		st   Stats
		best incumbent
		b    = newBudget(cfg)
		q    = newQueue(&st)
	)
	if err := b.check(); err != nil {
		return Result{}, err
	}
	q.push(rootNode(n, 0))

	var (
		cur  *node
		last int
		c    int
		g    float64
	)
	for !q.empty() {
		cur = q.pop()
		last = cur.path[len(cur.path)-1]

		if len(cur.path) == n {
			st.Completed++
			best.offer(cur.path, cur.g+d.Cost(last, cur.path[0]))
			continue
		}

		st.Expanded++
		if err := b.expand(); err != nil {
			return Result{}, err
		}
		for c = 0; c < n; c++ {
			if cur.visited[c] {
				continue
			}
			g = cur.g + d.Cost(last, c)
			child := extend(cur, c, g)
			child.key = g
			q.push(child)
			if err := b.charge(n); err != nil {
				return Result{}, err
			}
		}
	}

	return best.result(UCS, st), nil
}
