// Package gridpath is a 2D grid pathfinding engine for sparse obstacle
// fields.
//
// Rather than expanding every free cell of the lattice (classic grid A*),
// it reduces the search graph to the convex corner nodes of obstacle
// clusters ("objects") and connects them with a grid-aware line-of-sight
// test, then runs A* over that much smaller visibility graph. It is built
// for fields where obstacles occupy a small fraction of the relevant area
// and paths can be long.
//
// Everything is organized under a handful of subpackages:
//
//	geom/       — the integer lattice point and its admissible distance metric
//	objects/    — 8-connected clustering, corner-node derivation, nearest-node snap
//	visibility/ — the grid Bresenham line-of-sight test
//	pathfind/   — A* over the visibility graph, plus path pruning
//	scenario/   — YAML obstacle-field fixtures for tests, benchmarks, the visualizer
//	mapwatch/   — hot-reloading a Map from a scenario file on disk
//	visual/     — a tcell terminal renderer for a Map and a found path
//
// Quick usage:
//
//	m := gridpath.New()
//	m.AddObjects(geom.Pos{X: 0, Z: 0}, geom.Pos{X: 0, Z: 1})
//	m.Precompute()
//	path, ok := m.FindPath(geom.Pos{X: -5, Z: -5}, geom.Pos{X: 5, Z: 5})
//
// Mutation (AddObjects, RemoveObjects, Precompute) requires exclusive
// access; FindPath and the read-only accessors may run concurrently with
// each other but never alongside a mutation.
package gridpath
