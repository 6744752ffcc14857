package solve

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/topology"
)

// Solve dispatches to the solver for strategy.
func Solve(strategy Strategy, g *grid.Grid, topo topology.Topology, start, end grid.Point, opts ...Option) (grid.Path, error) {
	switch strategy {
	case StrategyAStar:
		return AStar(g, topo, start, end, opts...)
	case StrategyBFS:
		return BFS(g, topo, start, end, opts...)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
}

// search is the state shared by both solvers: dense per-cell parent links
// indexed row-major, -1 for none.
type search struct {
	g     *grid.Grid
	topo  topology.Topology
	opts  Options
	start grid.Point
	end   grid.Point
	prev  []int
}

// newSearch validates inputs and applies options.
func newSearch(g *grid.Grid, topo topology.Topology, start, end grid.Point, opts []Option) (*search, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if topo == nil {
		return nil, ErrTopologyNil
	}
	for _, p := range [2]grid.Point{start, end} {
		if !g.InShape(p) {
			return nil, fmt.Errorf("%w: %s", ErrBadEndpoint, p)
		}
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s := &search{g: g, topo: topo, opts: o, start: start, end: end, prev: make([]int, g.Len())}
	for i := range s.prev {
		s.prev[i] = -1
	}
	return s, nil
}

func (s *search) index(p grid.Point) int {
	return s.g.Index(p.X, p.Y)
}

// edges lists the neighbors of p reachable through an open wall.
func (s *search) edges(p grid.Point) []grid.Point {
	return topology.OpenNeighbors(s.topo, s.g, p)
}

// path rebuilds start→p from the parent links.
func (s *search) path(p grid.Point) grid.Path {
	var rev grid.Path
	for at := s.index(p); at >= 0; at = s.prev[at] {
		rev = append(rev, s.g.Coordinate(at))
	}
	out := make(grid.Path, len(rev))
	for i, q := range rev {
		out[len(rev)-1-i] = q
	}
	return out
}

// expanded runs the cancellation check and the hook for p.
func (s *search) expanded(p grid.Point) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	if s.opts.OnExpand == nil {
		return nil
	}
	if err := s.opts.OnExpand(s.path(p), p); err != nil {
		return fmt.Errorf("solve: expand hook at %s: %w", p, err)
	}
	return nil
}
