package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/prim_kruskal"
)

// dense is a minimal Weights implementation over a square [][]float64.
type dense [][]float64

func (d dense) Cost(i, j int) float64 { return d[i][j] }

var _ prim_kruskal.Weights = dense{}

// infDense returns an n×n matrix with 0 on the diagonal and +Inf elsewhere.
func infDense(n int) dense {
	d := make(dense, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}

	return d
}

// link sets the symmetric weight of (i,j).
func (d dense) link(i, j int, w float64) {
	d[i][j] = w
	d[j][i] = w
}

// clrs builds the 9-vertex textbook graph (a..i) whose MST weight is 37.
func clrs() dense {
	const (
		a = iota
		b
		c
		dd
		e
		f
		g
		h
		i
	)
	m := infDense(9)
	m.link(a, b, 4)
	m.link(a, h, 8)
	m.link(b, c, 8)
	m.link(b, h, 11)
	m.link(c, dd, 7)
	m.link(c, f, 4)
	m.link(c, i, 2)
	m.link(dd, e, 9)
	m.link(dd, f, 14)
	m.link(e, f, 10)
	m.link(f, g, 2)
	m.link(g, h, 1)
	m.link(g, i, 6)
	m.link(h, i, 7)

	return m
}

func all(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

func TestPrimKruskal_Textbook(t *testing.T) {
	m := clrs()
	assert.Equal(t, 37.0, prim_kruskal.Prim(m, all(9)))
	assert.Equal(t, 37.0, prim_kruskal.Kruskal(m, all(9)))
}

func TestPrimKruskal_TrivialSubsets(t *testing.T) {
	m := clrs()
	for _, subset := range [][]int{nil, {}, {4}} {
		assert.Zero(t, prim_kruskal.Prim(m, subset))
		assert.Zero(t, prim_kruskal.Kruskal(m, subset))
	}
}

func TestPrimKruskal_Subset(t *testing.T) {
	// Square with diagonals: B, C, D form a path B-C-D of weight 20.
	m := infDense(4)
	m.link(0, 1, 10)
	m.link(1, 2, 10)
	m.link(2, 3, 10)
	m.link(3, 0, 10)
	m.link(0, 2, 14)
	m.link(1, 3, 14)

	assert.Equal(t, 20.0, prim_kruskal.Prim(m, []int{1, 2, 3}))
	assert.Equal(t, 20.0, prim_kruskal.Kruskal(m, []int{3, 1, 2}))
	assert.Equal(t, 10.0, prim_kruskal.Prim(m, []int{2, 3}))
}

func TestPrimKruskal_DisconnectedIsInf(t *testing.T) {
	m := infDense(4)
	m.link(0, 1, 1)
	m.link(2, 3, 1)

	assert.True(t, math.IsInf(prim_kruskal.Prim(m, all(4)), 1))
	assert.True(t, math.IsInf(prim_kruskal.Kruskal(m, all(4)), 1))
	// Each connected half on its own is finite.
	assert.Equal(t, 1.0, prim_kruskal.Prim(m, []int{2, 3}))
}

func TestPrimKruskal_AgreeOnRandomMatrices(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 2 + r.Intn(9)
		m := infDense(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Intn(5) == 0 {
					continue // leave some pairs unreachable
				}
				m.link(i, j, float64(r.Intn(20)))
			}
		}
		subset := r.Perm(n)[:1+r.Intn(n)]

		p := prim_kruskal.Prim(m, subset)
		k := prim_kruskal.Kruskal(m, subset)
		require.Equal(t, p, k, "trial %d subset %v", trial, subset)
		// Deterministic on recomputation.
		require.Equal(t, p, prim_kruskal.Prim(m, subset))
	}
}

func TestEstimator(t *testing.T) {
	m := clrs()

	est, err := prim_kruskal.NewEstimator(m)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, est.Method())
	assert.Equal(t, 37.0, est.Weight(all(9)))

	est, err = prim_kruskal.NewEstimator(m, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, est.Method())
	assert.Equal(t, 37.0, est.Weight(all(9)))
}

func TestEstimator_Errors(t *testing.T) {
	_, err := prim_kruskal.NewEstimator(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilWeights)

	_, err = prim_kruskal.NewEstimator(clrs(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestParseMethod(t *testing.T) {
	m, err := prim_kruskal.ParseMethod(" Kruskal ")
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, m)

	m, err = prim_kruskal.ParseMethod("PRIM")
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, m)

	_, err = prim_kruskal.ParseMethod("")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
