package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspsearch/distance"
)

// Method names used in error context.
const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"
	methodEuclidean    = "Euclidean"
)

// Constructor produces the edge list of one instance from a resolved config.
type Constructor func(cfg config) ([]distance.Edge, error)

// Edges runs c with opts applied in order.
func Edges(c Constructor, opts ...Option) ([]distance.Edge, error) {
	return c(newConfig(opts...))
}

// Build runs c and loads the result into a distance.Model.
func Build(c Constructor, opts ...Option) (*distance.Model, error) {
	edges, err := Edges(c, opts...)
	if err != nil {
		return nil, err
	}

	return distance.New(edges)
}

// Complete connects every pair {i, j}, i < j, in lexicographic order.
// n = 1 yields a single self-pair so the city still registers.
func Complete(n int) Constructor {
	return func(cfg config) ([]distance.Edge, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewCities)
		}
		if err := cfg.validate(methodComplete); err != nil {
			return nil, err
		}
		ids := cfg.labels(n)
		if n == 1 {
			return []distance.Edge{{From: ids[0], To: ids[0]}}, nil
		}

		edges := make([]distance.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, distance.Edge{From: ids[i], To: ids[j], Cost: cfg.weight()})
			}
		}

		return edges, nil
	}
}

// Cycle links i to i+1 and n-1 back to 0.
func Cycle(n int) Constructor {
	return func(cfg config) ([]distance.Edge, error) {
		if n < 3 {
			return nil, fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrTooFewCities)
		}
		if err := cfg.validate(methodCycle); err != nil {
			return nil, err
		}
		ids := cfg.labels(n)
		edges := make([]distance.Edge, n)
		for i := range edges {
			edges[i] = distance.Edge{From: ids[i], To: ids[(i+1)%n], Cost: cfg.weight()}
		}

		return edges, nil
	}
}

// RandomSparse keeps each pair with probability p. Every city is registered
// even when it ends up isolated.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg config) ([]distance.Edge, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewCities)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := cfg.validate(methodRandomSparse); err != nil {
			return nil, err
		}
		ids := cfg.labels(n)
		edges := make([]distance.Edge, 0, n)
		for i := range ids {
			edges = append(edges, distance.Edge{From: ids[i], To: ids[i]})
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, distance.Edge{From: ids[i], To: ids[j], Cost: cfg.weight()})
				}
			}
		}

		return edges, nil
	}
}

// Euclidean scatters n points on a gridSize×gridSize square and connects
// every pair with its rounded straight-line distance. The weight range is
// not used.
func Euclidean(n int) Constructor {
	return func(cfg config) ([]distance.Edge, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodEuclidean, n, ErrTooFewCities)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodEuclidean, ErrNeedRandSource)
		}
		ids := cfg.labels(n)
		if n == 1 {
			return []distance.Edge{{From: ids[0], To: ids[0]}}, nil
		}

		xs, ys := make([]float64, n), make([]float64, n)
		for i := range xs {
			xs[i] = float64(cfg.rng.Intn(cfg.gridSize + 1))
			ys[i] = float64(cfg.rng.Intn(cfg.gridSize + 1))
		}
		edges := make([]distance.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j]))
				edges = append(edges, distance.Edge{From: ids[i], To: ids[j], Cost: int64(d)})
			}
		}

		return edges, nil
	}
}
