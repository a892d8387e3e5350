package tsp

// Solve dispatches to the search selected by algo.
//
// It is the single entry point used by the command line and HTTP layers:
//
//	res, err := tsp.Solve(model, tsp.AStarSearch, tsp.WithMaxExpansions(1_000_000))
//
// Errors: ErrUnsupportedAlgorithm plus whatever the chosen search returns.
func Solve(d Distances, algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case DFS:
		return Exhaustive(d, opts...)
	case UCS:
		return UniformCost(d, opts...)
	case AStarSearch:
		return AStar(d, opts...)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// SolveAll runs every algorithm in Algorithms order on the same model and
// returns the results in that order. It stops at the first error.
func SolveAll(d Distances, opts ...Option) ([]Result, error) {
	out := make([]Result, 0, len(Algorithms))
	for _, a := range Algorithms {
		res, err := Solve(d, a, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}
