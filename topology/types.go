package topology

import (
	"errors"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
)

// Sentinel errors for topology operations.
var (
	// ErrUnknownStyle indicates a style with no topology implementation.
	ErrUnknownStyle = errors.New("topology: unknown style")
	// ErrShapeNil indicates a nil shape provider was passed to Build.
	ErrShapeNil = errors.New("topology: shape provider is nil")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("topology: point out of bounds")
	// ErrNotAdjacent indicates two points that are not topology neighbors.
	ErrNotAdjacent = errors.New("topology: points are not adjacent")
)

// Topology is the lattice capability set shared by every maze style.
//
// Neighbors returns in-shape neighbors in a fixed, documented order so that
// searches and tests are reproducible. RemoveWallBetween and HasWallBetween
// are symmetric in their arguments.
type Topology interface {
	// Style reports the grid style this topology builds.
	Style() grid.Style

	// Build allocates a fresh grid and marks the in-shape cells.
	// Every in-shape cell starts unvisited with all walls present.
	Build(width, height int, sp shape.Provider) (*grid.Grid, error)

	// Neighbors lists the in-shape topology neighbors of p.
	Neighbors(g *grid.Grid, p grid.Point) []grid.Point

	// RemoveWallBetween opens the passage between neighbors a and b.
	RemoveWallBetween(g *grid.Grid, a, b grid.Point) error

	// HasWallBetween reports whether a wall separates a and b.
	// Non-neighbors are always separated.
	HasWallBetween(g *grid.Grid, a, b grid.Point) bool

	// NumSegments returns the segment count of a radial ring (0 for lattices).
	NumSegments(ring int) int

	// Heuristic is an admissible lower bound on the step count from a to b.
	Heuristic(g *grid.Grid, a, b grid.Point) int

	// Orthogonal reports whether neighbors are the four lattice directions,
	// which lets callers annex out-of-shape cells into the maze.
	Orthogonal() bool
}

// OpenNeighbors lists the neighbors of p reachable without crossing a wall.
func OpenNeighbors(t Topology, g *grid.Grid, p grid.Point) []grid.Point {
	nbs := t.Neighbors(g, p)
	out := nbs[:0:0]
	for _, q := range nbs {
		if !t.HasWallBetween(g, p, q) {
			out = append(out, q)
		}
	}
	return out
}
