package tsp

// dfsFrame is one level of the explicit depth-first stack. The prefix itself
// lives in the shared path buffer: frame d corresponds to path[d].
type dfsFrame struct {
	cost float64 // cost of path[0..d]
	next int     // next candidate child index to try
}

// dfsEngine holds the state of one Exhaustive call.
type dfsEngine struct {
	d       Distances
	n       int
	path    []int
	visited []bool
	stack   []dfsFrame
	best    incumbent
	budget  *budget
	stats   Stats
}

// Exhaustive enumerates every Hamiltonian cycle depth-first and returns the
// cheapest one.
//
// For each start city (all of 0..N-1 unless WithSingleStart is given) the
// prefix is extended by the next unvisited city in increasing index order.
// A full-length prefix is closed with cost(last, first); it replaces the
// incumbent only when strictly cheaper, so the first minimum found wins.
// The recursion of the textbook formulation is replaced by an explicit stack
// of (cost, cursor) frames over a shared path / visited buffer.
//
// Errors: ErrNilModel, ErrExpansionLimit, ErrTimeLimit, ctx.Err() (WithContext).
//
// Complexity: O(N·N!) time (O(N!) with WithSingleStart), O(N) memory.
func Exhaustive(d Distances, opts ...Option) (Result, error) {
	if d == nil {
		return Result{}, ErrNilModel
	}
	cfg := buildOptions(opts)
	n := d.Len()
	if n == 0 {
		return Result{Algorithm: DFS}, nil
	}

	e := &dfsEngine{
		d:       d,
		n:       n,
		path:    make([]int, n),
		visited: make([]bool, n),
		stack:   make([]dfsFrame, 0, n),
		budget:  newBudget(cfg),
	}

	if err := e.budget.check(); err != nil {
		return Result{}, err
	}

	starts := n
	if cfg.SingleStart {
		starts = 1
	}
	var start int
	for start = 0; start < starts; start++ {
		if err := e.run(start); err != nil {
			return Result{}, err
		}
	}

	return e.best.result(DFS, e.stats), nil
}

// push places city c at depth len(stack) with the given prefix cost.
func (e *dfsEngine) push(c int, cost float64) error {
	depth := len(e.stack)
	e.visited[c] = true
	e.path[depth] = c
	e.stack = append(e.stack, dfsFrame{cost: cost})
	e.stats.Generated++
	if len(e.stack) > e.stats.MaxFrontier {
		e.stats.MaxFrontier = len(e.stack)
	}
	if depth+1 < e.n {
		e.stats.Expanded++

		return e.budget.expand()
	}

	return nil
}

// pop removes the deepest frame and frees its city.
func (e *dfsEngine) pop() {
	depth := len(e.stack) - 1
	e.visited[e.path[depth]] = false
	e.stack = e.stack[:depth]
}

// run enumerates every tour whose first city is start.
func (e *dfsEngine) run(start int) error {
	if err := e.push(start, 0); err != nil {
		return err
	}

	var (
		top   *dfsFrame
		depth int
		c     int
		cost  float64
	)
	for len(e.stack) > 0 {
		depth = len(e.stack)
		top = &e.stack[depth-1]

		// Full prefix: close the cycle, then backtrack.
		if depth == e.n {
			e.stats.Completed++
			e.best.offer(e.path, top.cost+e.d.Cost(e.path[e.n-1], e.path[0]))
			e.pop()
			continue
		}

		// Advance the cursor to the next unvisited child.
		c = top.next
		for c < e.n && e.visited[c] {
			c++
		}
		if c == e.n {
			e.pop()
			continue
		}
		top.next = c + 1
		cost = top.cost + e.d.Cost(e.path[depth-1], c)
		if err := e.push(c, cost); err != nil {
			return err
		}
	}

	return nil
}
