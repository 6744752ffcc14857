package placement

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// Spiral places the exit at the center and the entrance on the outer ring.
type Spiral struct{}

// Select implements Selector.
func (Spiral) Select(g *grid.Grid, _ topology.Topology, _ int, r rng.Rand) (*Selection, error) {
	r = rng.Ensure(r)
	exit, ok := CenterPoint(g)
	if !ok {
		return nil, fmt.Errorf("%w: no ring cell near center", ErrPlacement)
	}
	entry, ok := outerPoint(g, r)
	if !ok {
		return nil, fmt.Errorf("%w: no outer ring cell after %d angles", ErrPlacement, SpiralTries)
	}
	place(g, entry)
	return &Selection{
		Entrances: []grid.BoundaryPoint{entry},
		Exits:     []grid.BoundaryPoint{exit},
		Seeds:     []grid.Point{exit.Point(), entry.Point()},
	}, nil
}

// outerPoint samples random angles on the outermost ring's radius.
func outerPoint(g *grid.Grid, r rng.Rand) (grid.BoundaryPoint, bool) {
	rings := topology.Rings(g.Width, g.Height)
	if rings == 0 {
		return grid.BoundaryPoint{}, false
	}
	radius := float64(rings) * 2
	for try := 0; try < SpiralTries; try++ {
		angle := r.Float64() * 2 * math.Pi
		c := g.CellAt(topology.PolarPoint(g.Width, g.Height, radius, angle))
		if c == nil || !c.InShape || c.Ring != rings-1 {
			continue
		}
		return grid.BoundaryPoint{
			X: c.X, Y: c.Y, Side: grid.SideOuter,
			Ring: c.Ring, Segment: c.Segment,
		}, true
	}
	return grid.BoundaryPoint{}, false
}
