package solve

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/topology"
)

// BFS returns a shortest path from start to end, or ErrNoPath.
// OnExpand sees the path to every dequeued cell, the goal included.
func BFS(g *grid.Grid, topo topology.Topology, start, end grid.Point, opts ...Option) (grid.Path, error) {
	s, err := newSearch(g, topo, start, end, opts)
	if err != nil {
		return nil, err
	}
	if start == end {
		return grid.Path{start}, nil
	}

	seen := mapset.New[grid.Point]()
	seen.Put(start)
	queue := []grid.Point{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if err = s.expanded(cur); err != nil {
			return nil, err
		}
		if cur == end {
			return s.path(end), nil
		}
		for _, nb := range s.edges(cur) {
			if seen.Has(nb) {
				continue
			}
			seen.Put(nb)
			s.prev[s.index(nb)] = s.index(cur)
			queue = append(queue, nb)
		}
	}
	return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
}
