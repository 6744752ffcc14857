package solve

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/topology"
)

// Walk checks that path is a valid walk through the maze: every cell is in
// shape, consecutive cells are topology neighbors with no wall between
// them, and no cell repeats. An empty path is broken.
func Walk(g *grid.Grid, topo topology.Topology, path grid.Path) error {
	if g == nil {
		return ErrGridNil
	}
	if topo == nil {
		return ErrTopologyNil
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrBrokenPath)
	}

	seen := mapset.New[grid.Point]()
	for i, p := range path {
		if !g.InShape(p) {
			return fmt.Errorf("%w: %s outside maze", ErrBrokenPath, p)
		}
		if seen.Has(p) {
			return fmt.Errorf("%w: %s repeats", ErrBrokenPath, p)
		}
		seen.Put(p)
		if i == 0 {
			continue
		}
		if !adjacent(topo, g, path[i-1], p) {
			return fmt.Errorf("%w: %s-%s not adjacent", ErrBrokenPath, path[i-1], p)
		}
		if topo.HasWallBetween(g, path[i-1], p) {
			return fmt.Errorf("%w: wall %s-%s", ErrBrokenPath, path[i-1], p)
		}
	}
	return nil
}

func adjacent(topo topology.Topology, g *grid.Grid, a, b grid.Point) bool {
	for _, q := range topo.Neighbors(g, a) {
		if q == b {
			return true
		}
	}
	return false
}
