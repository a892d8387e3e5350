// Package builder generates reproducible TSP instances as edge lists.
//
// Constructors:
//   - Complete(n): every pair of cities connected, weights from the weight policy.
//   - Cycle(n): a single ring 0-1-...-(n-1)-0; every other pair is unreachable,
//     so the ring is the only finite tour.
//   - RandomSparse(n, p): each pair kept with probability p (needs WithSeed).
//   - Euclidean(n): random points on a square grid, weight = rounded distance
//     (needs WithSeed).
//
// Options (later ones win):
//   - WithSeed(seed) makes stochastic choices reproducible.
//   - WithIDFn(fn) picks city labels (default ExcelColumnIDFn: A, B, ..., Z, AA).
//   - WithWeightRange(min, max) draws integer weights uniformly in [min, max];
//     without a seed the weight is min.
//   - WithGridSize(s) sets the Euclidean side length.
//
// Build feeds the edges straight into distance.New.
//
// Example:
//
//	m, err := builder.Build(builder.Euclidean(8), builder.WithSeed(42))
package builder
