package tsp

import "github.com/katalvlaran/tspsearch/prim_kruskal"

// AStar runs the UniformCost frontier with priority f = g + h, where
// h = MST weight of the cities not yet on the prefix.
//
// Initial node: prefix [0], g = 0, h = MST(all cities but 0).
// Expanding to city c: g' = g + cost(last, c), unvisited' = unvisited − {c},
// h' = MST(unvisited'); the child is pushed with key g' + h'.
// A node whose unvisited set is empty is a completion: its closed cost is
// offered to the incumbent exactly as in UniformCost, and the frontier is
// drained before returning.
//
// h does not count the edge into the unvisited set nor the return edge, so
// it is not an admissible bound; the result is still optimal because no
// branch is ever pruned.
//
// Errors: ErrNilModel, prim_kruskal.ErrUnknownMethod, ErrExpansionLimit,
// ErrTimeLimit, ctx.Err() (WithContext).
//
// Complexity: like UniformCost, plus O(k²) per generated child for Prim.
func AStar(d Distances, opts ...Option) (Result, error) {
	if d == nil {
		return Result{}, ErrNilModel
	}
	cfg := buildOptions(opts)
	est, err := prim_kruskal.NewEstimator(d, prim_kruskal.WithMethod(cfg.MSTMethod))
	if err != nil {
		return Result{}, err
	}
	n := d.Len()
	if n == 0 {
		return Result{Algorithm: AStarSearch}, nil
	}

	var (
		st        Stats
		best      incumbent
		b         = newBudget(cfg)
		q         = newQueue(&st)
		unvisited = make([]int, 0, n)
	)

	if err = b.check(); err != nil {
		return Result{}, err
	}
	root := rootNode(n, 0)
	root.key = est.Weight(remaining(root.visited, -1, unvisited))
	q.push(root)

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
		if err = b.expand(); err != nil {
			return Result{}, err
		}
		for c = 0; c < n; c++ {
			if cur.visited[c] {
				continue
			}
			g = cur.g + d.Cost(last, c)
			child := extend(cur, c, g)
			rest := remaining(cur.visited, c, unvisited)
			child.key = g + est.Weight(rest)
			q.push(child)
			// One MST over k cities plus the path copy.
			if err = b.charge(n + len(rest)*len(rest)); err != nil {
				return Result{}, err
			}
		}
	}

	return best.result(AStarSearch, st), nil
}

// remaining fills buf with the cities not in visited, skipping also except
// (pass -1 to skip nothing), in increasing order.
func remaining(visited []bool, except int, buf []int) []int {
	buf = buf[:0]
	for c, in := range visited {
		if !in && c != except {
			buf = append(buf, c)
		}
	}

	return buf
}
