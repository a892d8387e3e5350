// Package tsp_test holds the shared fixtures for the search tests: small
// hand-built models and a seeded generator of complete instances.
package tsp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/distance"
	"github.com/katalvlaran/tspsearch/tsp"
)

// searchFn is the common signature of the three searches.
type searchFn func(tsp.Distances, ...tsp.Option) (tsp.Result, error)

// searches enumerates every strategy under a stable test name.
var searches = []struct {
	name string
	run  searchFn
}{
	{"DFS", tsp.Exhaustive},
	{"UCS", tsp.UniformCost},
	{"AStar", tsp.AStar},
}

// mustModel builds a model from "A B 10"-style triples.
func mustModel(t testing.TB, edges ...distance.Edge) *distance.Model {
	t.Helper()
	m, err := distance.New(edges)
	require.NoError(t, err)

	return m
}

// edge is shorthand for a distance.Edge literal.
func edge(a, b string, c int64) distance.Edge {
	return distance.Edge{From: a, To: b, Cost: c}
}

// square is A-B-C-D with sides 10 and diagonals 14; optimum 40.
func square(t testing.TB) *distance.Model {
	return mustModel(t,
		edge("A", "B", 10),
		edge("B", "C", 10),
		edge("C", "D", 10),
		edge("D", "A", 10),
		edge("A", "C", 14),
		edge("B", "D", 14),
	)
}

// randomComplete returns a complete instance on n cities with integer costs
// in [1, 100], generated from seed.
func randomComplete(t testing.TB, n int, seed int64) *distance.Model {
	t.Helper()
	var (
		r     = rand.New(rand.NewSource(seed))
		edges []distance.Edge
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge(fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", j), int64(1+r.Intn(100))))
		}
	}

	return mustModel(t, edges...)
}

// requireConsistent checks the invariants every non-empty result must hold:
// the tour is a permutation and its closed cost equals Result.Cost.
func requireConsistent(t testing.TB, d tsp.Distances, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, d.Len()))
	cost, err := tsp.TourCost(d, res.Tour)
	require.NoError(t, err)
	require.Equal(t, cost, res.Cost)
}
