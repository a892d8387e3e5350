// Package tsp solves the symmetric Travelling Salesman Problem exactly on
// small instances with three search strategies over a shared distance model:
//
//   - Exhaustive  – depth-first enumeration of every permutation, using an
//     explicit stack (no recursion). By default every city is tried as the
//     first city; WithSingleStart() restricts the search to city 0.
//     Complexity: O(N·N!) time, O(N) memory.
//
//   - UniformCost – best-first frontier search ordered by the accumulated
//     cost g of each partial tour, starting from city 0.
//     Complexity: O(N!) frontier entries in the worst case.
//
//   - AStar       – the same frontier ordered by f = g + h, where h is the
//     minimum spanning tree weight of the cities not yet visited
//     (see package prim_kruskal). h ignores the edge into the unvisited set
//     and the closing edge, so it only sharpens the ordering; optimality
//     comes from draining the whole frontier.
//
// Both frontier searches keep popping after the first complete tour: the
// frontier is drained and the cheapest closed cycle wins. No duplicate-state
// pruning is done, so the frontier can grow exponentially with N; cap it with
// WithMaxExpansions or WithTimeLimit.
//
// Distances:
//   - A distance of math.Inf(1) marks a pair without a direct edge. Such an
//     edge is still traversable; a result may therefore have Cost = +Inf when
//     no finite Hamiltonian cycle exists. That is a valid result, not an error.
//
// Determinism:
//   - Children are generated in increasing city index.
//   - Frontier ties are broken by insertion order.
//   - Among equally cheap tours the first one found is kept.
//
// Degenerate inputs:
//   - N = 0 → empty Result (Result.Empty() == true), nil error.
//   - N = 1 → Tour = [0], Cost = 0.
//
// Errors (sentinel): ErrNilModel, ErrUnsupportedAlgorithm,
// ErrExpansionLimit, ErrTimeLimit, ErrInvalidTour.
package tsp
