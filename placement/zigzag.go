package placement

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// Zigzag opens the corridor at the top-left and bottom-right.
type Zigzag struct{}

// Select implements Selector. The entrance tries columns 1 then 0 of the
// top row; the exit tries columns w-2 then w-1 of the bottom row.
func (Zigzag) Select(g *grid.Grid, _ topology.Topology, _ int, _ rng.Rand) (*Selection, error) {
	entry, ok := firstInShape(g, 0, grid.SideTop, 1, 0)
	if !ok {
		return nil, fmt.Errorf("%w: top row", ErrPlacement)
	}
	exit, ok := firstInShape(g, g.Height-1, grid.SideBottom, g.Width-2, g.Width-1)
	if !ok || exit.Point() == entry.Point() {
		return nil, fmt.Errorf("%w: bottom row", ErrPlacement)
	}
	place(g, entry, exit)
	return &Selection{
		Entrances: []grid.BoundaryPoint{entry},
		Exits:     []grid.BoundaryPoint{exit},
		Seeds:     []grid.Point{exit.Point(), entry.Point()},
	}, nil
}

func firstInShape(g *grid.Grid, y int, side grid.Side, xs ...int) (grid.BoundaryPoint, bool) {
	for _, x := range xs {
		if g.InShape(grid.Point{X: x, Y: y}) {
			return lattice(x, y, side), true
		}
	}
	return grid.BoundaryPoint{}, false
}
