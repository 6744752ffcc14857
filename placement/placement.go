package placement

import (
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// lattice builds a side-tagged point with no polar address.
func lattice(x, y int, side grid.Side) grid.BoundaryPoint {
	return grid.BoundaryPoint{X: x, Y: y, Side: side, Ring: -1, Segment: -1}
}

// CutGap removes the outward-facing wall of bp's cell.
// Center points and points outside the grid are left alone.
func CutGap(g *grid.Grid, bp grid.BoundaryPoint) {
	c := g.CellAt(bp.Point())
	if c == nil {
		return
	}
	switch bp.Side {
	case grid.SideTop:
		c.Walls.Top = false
	case grid.SideRight:
		c.Walls.Right = false
	case grid.SideBottom:
		c.Walls.Bottom = false
	case grid.SideLeft:
		c.Walls.Left = false
	case grid.SideOuter:
		c.Walls.Outward = false
	}
}

// CenterPoint returns the first in-shape cell of the 3×3 block around the
// grid center, scanning rows top to bottom.
func CenterPoint(g *grid.Grid) (grid.BoundaryPoint, bool) {
	ctr := topology.Center(g.Width, g.Height)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := g.At(ctr.X+dx, ctr.Y+dy)
			if c != nil && c.InShape {
				return grid.BoundaryPoint{
					X: c.X, Y: c.Y, Side: grid.SideCenter,
					Ring: c.Ring, Segment: c.Segment,
				}, true
			}
		}
	}
	return grid.BoundaryPoint{}, false
}

// EdgePoint draws up to EdgeTries random edge cells and returns the first
// in-shape one. Corners are never chosen; sides shorter than three cells
// have no interior and count as a failed try.
func EdgePoint(g *grid.Grid, r rng.Rand) (grid.BoundaryPoint, bool) {
	for try := 0; try < EdgeTries; try++ {
		bp, ok := pointOnSide(g, grid.SideTop+grid.Side(rng.Intn(r, 4)), r)
		if ok && g.InShape(bp.Point()) {
			return bp, true
		}
	}
	return grid.BoundaryPoint{}, false
}

func pointOnSide(g *grid.Grid, side grid.Side, r rng.Rand) (grid.BoundaryPoint, bool) {
	w, h := g.Width, g.Height
	switch side {
	case grid.SideTop, grid.SideBottom:
		if w < 3 {
			return grid.BoundaryPoint{}, false
		}
		y := 0
		if side == grid.SideBottom {
			y = h - 1
		}
		return lattice(rng.Intn(r, w-2)+1, y, side), true
	default:
		if h < 3 {
			return grid.BoundaryPoint{}, false
		}
		x := 0
		if side == grid.SideRight {
			x = w - 1
		}
		return lattice(x, rng.Intn(r, h-2)+1, side), true
	}
}

// place cuts the gap of every point.
func place(g *grid.Grid, pts ...grid.BoundaryPoint) {
	for _, bp := range pts {
		CutGap(g, bp)
	}
}
