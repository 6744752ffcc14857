// Package topology builds maze lattices and defines their adjacency and wall
// semantics.
//
// What:
//
//   - Topology is a capability interface: build a grid, enumerate a cell's
//     neighbors, remove or test the wall between two neighbors, report the
//     segment count of a radial ring, and estimate distance for A*.
//   - Four implementations: Classic (orthogonal, cut to a boundary shape),
//     Spiral (concentric rings, circle forced), Zigzag (serpentine bands),
//     Honeycomb (offset hex tiles on a square lattice).
//   - New selects the implementation once; callers never switch on the style.
//
// Why:
//
//   - Carvers, connectors and solvers stay topology-agnostic: they only ask
//     "who are my neighbors" and "is there a wall between us".
//
// Complexity:
//
//   - Build:     O(W×H) (Spiral: O(W×H + Σ segments)).
//   - Neighbors: O(1).
//   - Wall ops:  O(1) (Spiral: O(degree) adjacency check).
//
// Errors:
//
//   - ErrUnknownStyle: New got a style outside the table.
//   - ErrShapeNil:     Classic.Build got a nil shape provider.
//   - ErrOutOfBounds:  a wall operation referenced a cell outside the grid.
//   - ErrNotAdjacent:  a wall operation referenced two non-neighbors.
package topology
