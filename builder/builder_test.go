package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/builder"
	"github.com/katalvlaran/tspsearch/tsp"
)

func TestExcelColumnIDFn(t *testing.T) {
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx))
	}
}

func TestComplete(t *testing.T) {
	edges, err := builder.Edges(builder.Complete(5), builder.WithWeightRange(3, 3))
	require.NoError(t, err)
	require.Len(t, edges, 10)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
	for _, e := range edges {
		assert.Equal(t, int64(3), e.Cost)
	}

	m, err := builder.Build(builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestCompleteSeededWeights(t *testing.T) {
	a, err := builder.Edges(builder.Complete(6), builder.WithSeed(7), builder.WithWeightRange(1, 9))
	require.NoError(t, err)
	b, err := builder.Edges(builder.Complete(6), builder.WithSeed(7), builder.WithWeightRange(1, 9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	for _, e := range a {
		assert.GreaterOrEqual(t, e.Cost, int64(1))
		assert.LessOrEqual(t, e.Cost, int64(9))
	}
}

func TestCycleIsTheOnlyTour(t *testing.T) {
	m, err := builder.Build(builder.Cycle(6), builder.WithWeightRange(5, 5))
	require.NoError(t, err)

	res, err := tsp.Solve(m, tsp.UCS)
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.Cost)
	assert.True(t, math.IsInf(m.Cost(0, 2), 1))
}

func TestRandomSparseRegistersEveryCity(t *testing.T) {
	m, err := builder.Build(builder.RandomSparse(7, 0), builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 0, m.Edges())

	m, err = builder.Build(builder.RandomSparse(7, 1), builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 21, m.Edges())
}

func TestEuclideanAgreement(t *testing.T) {
	m, err := builder.Build(builder.Euclidean(7), builder.WithSeed(42), builder.WithGridSize(50))
	require.NoError(t, err)
	assert.Equal(t, 7, m.Len())

	results, err := tsp.SolveAll(m)
	require.NoError(t, err)
	for _, r := range results[1:] {
		assert.Equal(t, results[0].Cost, r.Cost, r.Algorithm.String())
	}
}

func TestValidation(t *testing.T) {
	_, err := builder.Edges(builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewCities)
	_, err = builder.Edges(builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewCities)
	_, err = builder.Edges(builder.RandomSparse(4, 1.5), builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Edges(builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Edges(builder.Euclidean(4))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Edges(builder.Complete(4), builder.WithWeightRange(5, 1))
	assert.ErrorIs(t, err, builder.ErrInvalidWeightRange)
}

func TestDefaultIDFn(t *testing.T) {
	m, err := builder.Build(builder.Complete(3), builder.WithIDFn(builder.DefaultIDFn))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, m.Labels())
}
