// Package pickroute plans walking routes for a single picker on a
// warehouse floor modelled as a grid.
//
// 🚀 What is pickroute?
//
//	Given a floor of open and obstacle cells, a depot and a set of pick
//	points, pickroute finds a short walk that starts at the depot, visits
//	every pick point once and returns:
//		• Shortest paths: BFS over open cells, 4-directional moves
//		• Distance matrix: one BFS per point of interest
//		• Tour: sequential or greedy nearest-neighbour, then 2-opt
//		• Route: concrete cell legs, visit order, held return leg
//
// Under the hood, everything is organized in subpackages:
//
//	gridgraph/  — the floor: cells, flags, neighbours, regions
//	bfs/        — shortest-path oracle
//	distmatrix/ — hop-count table between points of interest
//	tsp/        — tour construction and 2-opt improvement
//	route/      — leg materialisation and distance table
//	layout/     — wall/target/spawn records (CSV, YAML)
//	planner/    — the session: plan, display queue, commit return
//	config/     — YAML configuration
//	metrics/    — Prometheus instrumentation
//	cmd/pickroute — command-line front end
//
// Quick ASCII example (D depot, 1–2 visit order, # wall):
//
//	D · · 1 ·
//	· # # # ·
//	· · · · 2
package pickroute
