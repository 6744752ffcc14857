// Package carve generates perfect mazes with the randomized depth-first
// backtracker on any topology.Topology.
//
// What:
//
//   - Carve(g, topo, seed, opts...) grows a spanning tree of the in-shape
//     component containing seed: it marks cells visited and removes the wall
//     between each cell and the neighbor it was reached from.
//   - The walk uses an explicit stack, so very large grids do not grow the
//     goroutine stack.
//
// Algorithm:
//
//  1. Mark seed visited and push it.
//  2. Peek the top cell; collect its unvisited topology neighbors.
//  3. If any exist, shuffle them, pick one at random, remove the wall,
//     mark it visited and push it.
//  4. Otherwise pop.
//  5. Repeat until the stack is empty.
//
// Complexity:
//
//   - Time:   O(C) where C is the number of cells reachable from seed.
//   - Memory: O(C) for the stack and the visit order.
//
// Options:
//
//   - WithRand(r)      injects the random source.
//   - WithSeed(seed)   derives a deterministic source (0 ⇒ rng.DefaultSeed).
//   - WithOnStep(fn)   hook after every push and every pop; error aborts.
//   - WithContext(ctx) cancellation between steps.
//
// Errors:
//
//   - ErrGridNil, ErrTopologyNil:        nil inputs.
//   - ErrSeedOutOfBounds:                seed outside the grid.
//   - ErrSeedNotInShape:                 seed is not part of the maze.
//   - context errors and hook errors (wrapped).
//
// A seed that is already visited yields an empty Result and no error.
package carve
