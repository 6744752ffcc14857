package carve

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// carver holds the mutable state of one backtracking walk.
type carver struct {
	g     *grid.Grid
	topo  topology.Topology
	opts  Options
	stack []grid.Point
	res   *Result
}

// Carve runs the backtracker from seed and returns the visit order.
func Carve(g *grid.Grid, topo topology.Topology, seed grid.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if topo == nil {
		return nil, ErrTopologyNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Rand == nil {
		o.Rand = rng.New(0)
	}

	c := g.CellAt(seed)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrSeedOutOfBounds, seed)
	}
	if !c.InShape {
		return nil, fmt.Errorf("%w: %s", ErrSeedNotInShape, seed)
	}
	if c.Visited {
		return &Result{}, nil
	}

	w := &carver{
		g:    g,
		topo: topo,
		opts: o,
		res:  &Result{Visited: make([]grid.Point, 0, g.InShapeCount())},
	}
	return w.res, w.run(seed)
}

func (w *carver) run(seed grid.Point) error {
	if err := w.push(seed); err != nil {
		return err
	}

	var candidates []grid.Point
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.stack[len(w.stack)-1]
		candidates = w.unvisited(cur, candidates[:0])
		if len(candidates) == 0 {
			w.stack = w.stack[:len(w.stack)-1]
			if err := w.step(cur); err != nil {
				return err
			}
			continue
		}

		rng.Shuffle(candidates, w.opts.Rand)
		next, _ := rng.Pick(candidates, w.opts.Rand)
		if err := w.topo.RemoveWallBetween(w.g, cur, next); err != nil {
			return fmt.Errorf("carve: open %s-%s: %w", cur, next, err)
		}
		w.res.Passages++
		if err := w.push(next); err != nil {
			return err
		}
	}
	return nil
}

// push marks p visited, records it and reports the step.
func (w *carver) push(p grid.Point) error {
	w.g.CellAt(p).Visited = true
	w.res.Visited = append(w.res.Visited, p)
	w.stack = append(w.stack, p)
	return w.step(p)
}

func (w *carver) step(p grid.Point) error {
	if w.opts.OnStep == nil {
		return nil
	}
	if err := w.opts.OnStep(w.g, p); err != nil {
		return fmt.Errorf("carve: step hook at %s: %w", p, err)
	}
	return nil
}

// unvisited appends the in-shape, not yet visited neighbors of p to dst.
func (w *carver) unvisited(p grid.Point, dst []grid.Point) []grid.Point {
	for _, q := range w.topo.Neighbors(w.g, p) {
		if c := w.g.CellAt(q); c != nil && c.InShape && !c.Visited {
			dst = append(dst, q)
		}
	}
	return dst
}
