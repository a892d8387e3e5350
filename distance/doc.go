// Package distance holds the city set and the dense symmetric cost matrix
// shared by every tour search in tspsearch.
//
// A Model is built once from a list of undirected edges (or parsed from an
// edge-list text source) and is immutable afterwards, so it can be shared by
// any number of searches without locking.
//
// Input format (one edge per line):
//
//	cityA cityB cost
//
// where cost is a non-negative base-10 integer. Every declared edge populates
// both (i,j) and (j,i); a later declaration of the same pair overwrites the
// earlier one. Pairs that are never declared resolve to math.Inf(1)
// ("no direct edge") and are still reported by Cost rather than rejected.
//
// City indices are dense (0..N-1) and assigned in order of first appearance.
//
// Complexity:
//
//   - New / Parse: O(E + N²) time, O(N²) memory for the matrix.
//   - Cost, Label: O(1).
//   - IndexOf:     O(1) expected (precomputed map).
//
// Errors (sentinel):
//
//   - ErrLoad        – the source is missing or a line is malformed; returned
//     wrapped in *LoadError, which carries the file name and line number.
//   - ErrInvalidEdge – an Edge passed to New has an empty label or negative cost.
//   - ErrIndexOutOfRange – Label was called with an index outside 0..N-1.
package distance
