package prim_kruskal

import "math"

// Prim returns the MST weight of the complete graph induced by subset.
//
// Steps:
//  1. k ≤ 1 → 0.
//  2. best[p] = cheapest known edge from the tree to subset[p]; best[0] = 0.
//  3. k times: take the cheapest vertex outside the tree (lowest position on
//     ties, so an all-+Inf frontier still makes progress), add best[u] to the
//     total, then relax best[] through u.
//
// Complexity: O(k²) time, O(k) memory.
func Prim(w Weights, subset []int) float64 {
	var k = len(subset)
	if k <= 1 {
		return 0
	}

	var (
		inTree = make([]bool, k)
		best   = make([]float64, k)
		total  float64
		inf    = math.Inf(1)
		p, u   int
		c      float64
	)
	for p = range best {
		best[p] = inf
	}
	best[0] = 0

	var it int
	for it = 0; it < k; it++ {
		// (a) cheapest vertex outside the tree.
		u = -1
		for p = 0; p < k; p++ {
			if !inTree[p] && (u < 0 || best[p] < best[u]) {
				u = p
			}
		}
		// (b) attach it.
		inTree[u] = true
		total += best[u]
		// (c) relax through u.
		for p = 0; p < k; p++ {
			if inTree[p] {
				continue
			}
			c = w.Cost(subset[u], subset[p])
			if c < best[p] {
				best[p] = c
			}
		}
	}

	return total
}
