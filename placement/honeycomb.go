package placement

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// Honeycomb opens the left and right edges in the middle third.
type Honeycomb struct{}

// Select implements Selector.
func (Honeycomb) Select(g *grid.Grid, _ topology.Topology, _ int, r rng.Rand) (*Selection, error) {
	r = rng.Ensure(r)
	entry, ok := bandPoint(g, 0, grid.SideLeft, r)
	if !ok {
		return nil, fmt.Errorf("%w: left edge after %d tries", ErrPlacement, HoneycombTries)
	}
	exit, ok := bandPoint(g, g.Width-1, grid.SideRight, r)
	if !ok {
		return nil, fmt.Errorf("%w: right edge after %d tries", ErrPlacement, HoneycombTries)
	}
	place(g, entry, exit)
	return &Selection{
		Entrances: []grid.BoundaryPoint{entry},
		Exits:     []grid.BoundaryPoint{exit},
		Seeds:     []grid.Point{exit.Point(), entry.Point()},
	}, nil
}

// bandPoint draws y uniformly from [h/3, 2h/3) in column x.
func bandPoint(g *grid.Grid, x int, side grid.Side, r rng.Rand) (grid.BoundaryPoint, bool) {
	third := float64(g.Height) / 3
	for try := 0; try < HoneycombTries; try++ {
		y := int(third + r.Float64()*third)
		if g.InShape(grid.Point{X: x, Y: y}) {
			return lattice(x, y, side), true
		}
	}
	return grid.BoundaryPoint{}, false
}
