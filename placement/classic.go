package placement

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// Classic places a center exit for a single entrance, or edge pairs
// for several.
type Classic struct{}

// Select implements Selector.
func (Classic) Select(g *grid.Grid, _ topology.Topology, entrances int, r rng.Rand) (*Selection, error) {
	r = rng.Ensure(r)
	if entrances <= 1 {
		exit, ok := CenterPoint(g)
		if !ok {
			return nil, fmt.Errorf("%w: no in-shape cell near center", ErrPlacement)
		}
		entry, ok := EdgePoint(g, r)
		if !ok {
			return nil, fmt.Errorf("%w: no in-shape edge cell after %d tries", ErrPlacement, EdgeTries)
		}
		place(g, entry)
		return &Selection{
			Entrances: []grid.BoundaryPoint{entry},
			Exits:     []grid.BoundaryPoint{exit},
			Seeds:     []grid.Point{exit.Point()},
		}, nil
	}

	pairs := (entrances + 1) / 2
	sel := &Selection{
		Entrances: make([]grid.BoundaryPoint, 0, pairs),
		Exits:     make([]grid.BoundaryPoint, 0, pairs),
	}
	for i := 0; i < pairs; i++ {
		entry, ok := EdgePoint(g, r)
		if !ok {
			return nil, fmt.Errorf("%w: entrance %d", ErrPlacement, i)
		}
		exit, ok := EdgePoint(g, r)
		if !ok {
			return nil, fmt.Errorf("%w: exit %d", ErrPlacement, i)
		}
		place(g, entry, exit)
		sel.Entrances = append(sel.Entrances, entry)
		sel.Exits = append(sel.Exits, exit)
	}
	sel.Seeds = make([]grid.Point, 0, 2*pairs)
	for _, bp := range sel.Entrances {
		sel.Seeds = append(sel.Seeds, bp.Point())
	}
	for _, bp := range sel.Exits {
		sel.Seeds = append(sel.Seeds, bp.Point())
	}
	return sel, nil
}
