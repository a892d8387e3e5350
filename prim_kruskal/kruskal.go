package prim_kruskal

import "sort"

// pairEdge is one induced pair, addressed by positions in the subset.
type pairEdge struct {
	a, b int
	w    float64
}

// Kruskal returns the MST weight of the complete graph induced by subset.
//
// Steps:
//  1. k ≤ 1 → 0.
//  2. Collect all k·(k−1)/2 pairs and sort them stably by weight
//     (generation order breaks ties, so the run is deterministic).
//  3. Union-find with path compression and union by rank; accept an edge
//     whenever it joins two components, stop at k−1 edges.
//
// Because the induced graph is complete (+Inf edges included), k−1 edges
// are always found.
//
// Complexity: O(k² log k) time, O(k²) memory.
func Kruskal(w Weights, subset []int) float64 {
	var k = len(subset)
	if k <= 1 {
		return 0
	}

	// 2) All induced pairs.
	var (
		edges = make([]pairEdge, 0, k*(k-1)/2)
		a, b  int
	)
	for a = 0; a < k; a++ {
		for b = a + 1; b < k; b++ {
			edges = append(edges, pairEdge{a: a, b: b, w: w.Cost(subset[a], subset[b])})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].w < edges[j].w
	})

	// 3) Disjoint sets over positions.
	var (
		parent = make([]int, k)
		rank   = make([]int, k)
	)
	for a = range parent {
		parent[a] = a
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	var (
		total    float64
		accepted int
		ra, rb   int
	)
	for _, e := range edges {
		ra, rb = find(e.a), find(e.b)
		if ra == rb {
			continue
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}
		total += e.w
		accepted++
		if accepted == k-1 {
			break
		}
	}

	return total
}
