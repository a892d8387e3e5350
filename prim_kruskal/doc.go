// Package prim_kruskal computes minimum spanning tree (MST) weights over
// subsets of cities of a dense, symmetric distance matrix.
//
// The tour searches use the MST weight of the still-unvisited cities as an
// estimate of the remaining travel cost. Every subset is treated as the
// complete graph it induces: the weight between any two members is
// w.Cost(i, j), which may be math.Inf(1) for a pair without a direct edge.
// An infinite edge is still usable, so the tree always spans the subset and
// its weight is +Inf exactly when the finite edges leave the subset
// disconnected.
//
// Two interchangeable algorithms are provided:
//
//   - Prim    – dense O(k²) array version; no heap, no edge list.
//   - Kruskal – sorts all k·(k−1)/2 induced pairs, then union-find
//     with path compression and union by rank: O(k² log k).
//
// Both return the same value for the same subset. Tie-breaking among
// equal-weight edges may pick different trees, but never a different weight.
//
// The estimate ignores the edge from the current city into the subset and
// the closing edge back to the start, so it is a heuristic ordering signal,
// not an admissible lower bound on the remaining tour cost.
//
// Example:
//
//	est, err := prim_kruskal.NewEstimator(model, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := est.Weight([]int{1, 2, 3})
package prim_kruskal
