// Package tspsearch finds minimum-cost tours of small symmetric
// traveling-salesman instances and compares three exact search strategies.
//
// What is inside?
//
//	distance/       edge-list loader, writer and the dense, immutable distance model
//	prim_kruskal/   MST weight of a city subset (Prim or Kruskal), the A* estimate
//	tsp/            Exhaustive (DFS), UniformCost (UCS) and AStar searches,
//	                Solve/SolveAll dispatch, tour helpers and search statistics
//	builder/        seeded instance generators (complete, cycle, sparse, euclidean)
//	render/         styled text, JSON and Graphviz (DOT/SVG) output of results
//	config/         YAML/TOML settings with .env and TSPSEARCH_* overrides
//	api/            HTTP surface (/healthz, /metrics, /v1/solve)
//	cmd/tspsearch   CLI: solve, menu, serve, gen
//
// Input format, one undirected edge per line:
//
//	A B 10
//	B C 10
//	C D 10
//	D A 10
//	A C 14
//	B D 14
//
// Undeclared pairs are unreachable (+Inf). All three searches return the same
// minimum cost; for the square above it is 40 (A -> B -> C -> D -> A).
//
// Quick start:
//
//	m, err := distance.LoadFile("cities.txt")
//	if err != nil {
//		return err
//	}
//	res, err := tsp.Solve(m, tsp.AStarSearch)
//
// The searches are exponential in the number of cities and meant for N ≲ 10;
// tsp.WithMaxExpansions and tsp.WithTimeLimit bound a run.
package tspsearch
