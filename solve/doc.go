// Package solve finds and checks paths through carved mazes.
//
// The maze graph has one vertex per in-shape cell and an undirected edge
// between two topology neighbors whenever no wall separates them. All edges
// have unit cost, so both strategies return a shortest path:
//
//   - AStar: best-first search on f = g + topo.Heuristic with a binary heap
//     (container/heap); equal f-scores leave the heap in insertion order.
//   - BFS: plain breadth-first search that reports the partial path to the
//     cell it just expanded, which drives step-by-step visualization.
//
// Neighbors are explored in the topology's order, so results are
// deterministic for a given grid.
//
// Walk verifies that a path is a contiguous, wall-free walk with no
// repeated cells.
//
// Complexity:
//
//   - AStar: O(C log C) time, O(C) memory for C in-shape cells.
//   - BFS:   O(C) time and memory, plus O(depth) per OnExpand call.
//   - Walk:  O(len(path)).
//
// Errors:
//
//   - ErrGridNil, ErrTopologyNil: nil inputs.
//   - ErrBadEndpoint:             start or end outside the grid or not in shape.
//   - ErrNoPath:                  end is not reachable from start.
//   - ErrBrokenPath:              Walk found a gap, a wall or a repeat.
//   - ErrUnknownStrategy:         ParseStrategy or Solve got an unknown name.
//   - hook errors are wrapped and returned as is.
package solve
