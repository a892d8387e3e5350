package distance

import (
	"fmt"
	"math"
)

// Model is the immutable city index plus symmetric distance matrix.
// The zero value is an empty model (no cities).
type Model struct {
	labels []string       // index → label
	index  map[string]int // label → index
	w      []float64      // dense row-major costs: w[i*n+j]
	n      int            // number of cities
	edges  int            // number of distinct declared pairs (self-pairs excluded)
}

// New builds a Model from a list of undirected edges.
//
// Steps:
//  1. Validate every edge (non-empty labels, cost ≥ 0) → ErrInvalidEdge.
//  2. Assign dense indices in order of first appearance.
//  3. Fill an N×N buffer with +Inf, then write each declared pair both ways.
//     Duplicate pairs overwrite earlier ones; self-pairs only register the city.
//
// Complexity: O(E + N²) time, O(N²) memory.
func New(edges []Edge) (*Model, error) {
	var (
		m = &Model{index: make(map[string]int)}
		e Edge
		k int
	)

	// 1) Validate and register labels.
	for k, e = range edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d has an empty city label", ErrInvalidEdge, k)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s cost=%d", ErrInvalidEdge, e.From, e.To, e.Cost)
		}
		m.register(e.From)
		m.register(e.To)
	}
	m.n = len(m.labels)

	// 2) Unknown pairs are unreachable until declared.
	m.w = make([]float64, m.n*m.n)
	var inf = math.Inf(1)
	for k = range m.w {
		m.w[k] = inf
	}

	// 3) Declared pairs, bidirectional, last write wins.
	var (
		i, j int
		seen = make(map[[2]int]struct{}, len(edges))
	)
	for _, e = range edges {
		i, j = m.index[e.From], m.index[e.To]
		if i == j {
			continue
		}
		m.w[i*m.n+j] = float64(e.Cost)
		m.w[j*m.n+i] = float64(e.Cost)
		if i > j {
			i, j = j, i
		}
		seen[[2]int{i, j}] = struct{}{}
	}
	m.edges = len(seen)

	return m, nil
}

// register assigns the next dense index to label if it is new.
func (m *Model) register(label string) {
	if _, ok := m.index[label]; ok {
		return
	}
	m.index[label] = len(m.labels)
	m.labels = append(m.labels, label)
}

// Len returns the number of cities N.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Edges returns the number of distinct declared city pairs.
func (m *Model) Edges() int {
	if m == nil {
		return 0
	}

	return m.edges
}

// IndexOf returns the dense index of label.
func (m *Model) IndexOf(label string) (int, bool) {
	if m == nil {
		return 0, false
	}
	i, ok := m.index[label]

	return i, ok
}

// Label returns the label of city i.
func (m *Model) Label(i int) (string, error) {
	if m == nil || i < 0 || i >= m.n {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return m.labels[i], nil
}

// Labels returns a copy of all labels in index order.
func (m *Model) Labels() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.labels...)
}

// Cost returns the travel cost between cities i and j.
// The diagonal is 0; undeclared pairs are +Inf. Indices must be in range;
// searches call this in their hot loops, so it does not bounds-check beyond
// what the slice access does.
func (m *Model) Cost(i, j int) float64 {
	if i == j {
		return 0
	}

	return m.w[i*m.n+j]
}

// Reachable reports whether i and j share a declared (finite) edge.
func (m *Model) Reachable(i, j int) bool {
	return !math.IsInf(m.Cost(i, j), 1)
}
