// Package connect stitches independently carved maze regions together so
// that every entrance reaches its exit.
//
// Carved cells (in shape and visited) are grouped with a union-find
// (github.com/spakin/disjoint) joined along open passages. For every
// requested pair whose endpoints sit in different groups:
//
//  1. Bridge: collect every topology-adjacent carved pair (u, v) with u in
//     the From group and v in another group, open one at random, merge, and
//     re-check.
//  2. Corridor (orthogonal lattices only): run a multi-source 0–1 BFS from
//     the From group over the whole lattice, where entering a carved cell
//     costs 0 and any other cell costs 1, stopping at the To group. Cells on
//     the cheapest path that were not carved are annexed into the maze, and
//     walls are opened only between consecutive path cells of different
//     groups, so no cycle is introduced.
//
// If neither step applies the pair is reported as ErrUnreachable.
//
// Complexity:
//
//   - Grouping: O(C·α(C)) for C carved cells.
//   - Bridge:   O(C) per opened wall.
//   - Corridor: O(W·H) per pair.
package connect
