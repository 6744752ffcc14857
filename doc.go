// Package mazemaker generates, validates and solves shaped mazes.
//
// What is inside?
//
//	grid/      cells, walls, passages, boundary markers and ASCII rendering
//	shape/     square, circle, heart, star and hexagon outlines
//	topology/  classic, spiral, zigzag and honeycomb adjacency
//	carve/     randomized depth-first carving (recursive backtracker)
//	placement/ entrance/exit selection per style
//	connect/   joins regions left by multi-seed carving
//	solve/     BFS, A* and path walking
//	maze/      the generate/validate/retry controller
//	config/    YAML, .env and environment configuration
//	rng/       seeded random streams
//
// Quick start:
//
//	m, err := maze.New(maze.DefaultConfig())
//	if err != nil { ... }
//	g, err := m.Generate(ctx, false)
//	fmt.Print(g.Render(m.Solution()))
//
// The cmd/mazemaker binary wraps the same flow for the terminal.
package mazemaker
