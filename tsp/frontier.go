package tsp

import "container/heap"

// node is one partial tour on the frontier.
//
//	key     – priority: g for UCS, g + h for AStar.
//	g       – accumulated cost of the prefix edges (closing edge excluded).
//	path    – the prefix, path[0] == 0.
//	visited – membership of path, for O(1) tests.
//	seq     – insertion counter; breaks key ties so the order is total.
type node struct {
	key     float64
	g       float64
	path    []int
	visited []bool
	seq     uint64
}

// frontier is a min-heap of *node ordered by (key, seq).
type frontier []*node

// Len returns the number of nodes in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by key, then by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].key != f[j].key {
		return f[i].key < f[j].key
	}

	return f[i].seq < f[j].seq
}

// Swap exchanges two nodes.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; used by container/heap.
func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

// Pop removes the last node; used by container/heap.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return x
}

// queue wraps the heap with the sequence counter and frontier statistics.
type queue struct {
	h     frontier
	seq   uint64
	stats *Stats
}

func newQueue(st *Stats) *queue {
	q := &queue{stats: st}
	heap.Init(&q.h)

	return q
}

func (q *queue) push(nd *node) {
	nd.seq = q.seq
	q.seq++
	heap.Push(&q.h, nd)
	q.stats.Generated++
	if q.h.Len() > q.stats.MaxFrontier {
		q.stats.MaxFrontier = q.h.Len()
	}
}

func (q *queue) pop() *node { return heap.Pop(&q.h).(*node) }

func (q *queue) empty() bool { return q.h.Len() == 0 }

// extend returns a child of parent that appends city c.
func extend(parent *node, c int, g float64) *node {
	path := make([]int, len(parent.path)+1)
	copy(path, parent.path)
	path[len(parent.path)] = c
	visited := append([]bool(nil), parent.visited...)
	visited[c] = true

	return &node{g: g, path: path, visited: visited}
}

// rootNode is the single-city prefix [start].
func rootNode(n, start int) *node {
	visited := make([]bool, n)
	visited[start] = true

	return &node{path: []int{start}, visited: visited}
}
