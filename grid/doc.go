// Package grid holds the cell lattice a maze is carved into.
//
// A Grid is a dense, row-major arena of Cells addressed by (x,y) coordinates.
// Cells never point at each other; every relation (neighbors, passages,
// paths) is expressed with Points into the arena. The grid owns no algorithm:
// topologies decide which cells are in shape and how walls pair up, carvers
// and connectors mutate walls, solvers read them.
//
// Wall model:
//
//   - Orthogonal topologies use Top/Right/Bottom/Left; removing the wall
//     between two neighbors clears the matching flag on both cells.
//   - The radial (spiral) topology keeps passages per link (OpenLink,
//     LinkOpen) and mirrors them into Clockwise/Outward; cells outside
//     every ring keep Ring = Segment = -1.
//
// Non-lattice topologies may store explicit adjacency with SetLinks or Link.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrUnknownStyle:  ParseStyle got a name outside the style table.
package grid
