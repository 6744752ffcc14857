// Package placement chooses entrance and exit markers for a freshly built
// grid and cuts the matching gaps in its outer wall.
//
// Every style has its own policy, selected once through ForStyle:
//
//   - Classic, one entrance: the exit is the first in-shape cell of the 3×3
//     block around the grid center; the entrance is a random in-shape cell
//     on a random grid edge (up to 100 tries).
//   - Classic, N entrances: ⌈N/2⌉ entrance/exit pairs, all on the edges.
//   - Spiral: the exit is the center cell, the entrance a random cell of the
//     outermost ring (up to 8 angles).
//   - Zigzag: entrance on the top row near column 1, exit on the bottom row
//     near the last column.
//   - Honeycomb: entrance on the left edge, exit on the right edge, both in
//     the middle third of the height (up to 10 tries each).
//
// Each placed point except a center exit gets its outward-facing wall
// removed (CutGap). Selection.Seeds lists the cells the carver starts from.
//
// Errors:
//
//   - ErrPlacement: the retry budget ran out or a required cell is not in
//     shape. The caller aborts the attempt and rebuilds the grid.
//   - ErrUnknownStyle: ForStyle got a style with no policy.
package placement
