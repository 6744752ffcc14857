package topology

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
)

// direction is one orthogonal step and the wall it crosses.
type direction struct {
	dx, dy int
}

// latticeDirs is the fixed neighbor order: top, right, bottom, left.
var latticeDirs = [4]direction{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// lattice implements the four-neighbor wall model shared by Classic,
// Zigzag and Honeycomb.
type lattice struct{}

func (lattice) Neighbors(g *grid.Grid, p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, len(latticeDirs))
	for _, d := range latticeDirs {
		q := grid.Point{X: p.X + d.dx, Y: p.Y + d.dy}
		if g.InShape(q) {
			out = append(out, q)
		}
	}
	return out
}

func (lattice) RemoveWallBetween(g *grid.Grid, a, b grid.Point) error {
	ca, cb := g.CellAt(a), g.CellAt(b)
	if ca == nil || cb == nil {
		return fmt.Errorf("%w: %s-%s", ErrOutOfBounds, a, b)
	}
	switch dx, dy := b.X-a.X, b.Y-a.Y; {
	case dx == 1 && dy == 0:
		ca.Walls.Right, cb.Walls.Left = false, false
	case dx == -1 && dy == 0:
		ca.Walls.Left, cb.Walls.Right = false, false
	case dx == 0 && dy == 1:
		ca.Walls.Bottom, cb.Walls.Top = false, false
	case dx == 0 && dy == -1:
		ca.Walls.Top, cb.Walls.Bottom = false, false
	default:
		return fmt.Errorf("%w: %s-%s", ErrNotAdjacent, a, b)
	}
	return nil
}

func (lattice) HasWallBetween(g *grid.Grid, a, b grid.Point) bool {
	ca, cb := g.CellAt(a), g.CellAt(b)
	if ca == nil || cb == nil {
		return true
	}
	switch dx, dy := b.X-a.X, b.Y-a.Y; {
	case dx == 1 && dy == 0:
		return ca.Walls.Right || cb.Walls.Left
	case dx == -1 && dy == 0:
		return ca.Walls.Left || cb.Walls.Right
	case dx == 0 && dy == 1:
		return ca.Walls.Bottom || cb.Walls.Top
	case dx == 0 && dy == -1:
		return ca.Walls.Top || cb.Walls.Bottom
	}
	return true
}

func (lattice) NumSegments(int) int { return 0 }

// Heuristic is the Manhattan distance.
func (lattice) Heuristic(_ *grid.Grid, a, b grid.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func (lattice) Orthogonal() bool { return true }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// markInShape sets InShape from fn and keeps Visited = !InShape.
func markInShape(g *grid.Grid, fn func(x, y int) bool) {
	g.ForEach(func(c *grid.Cell) {
		c.InShape = fn(c.X, c.Y)
		c.Visited = !c.InShape
	})
}
