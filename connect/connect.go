package connect

import (
	"container/list"
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

// lattice steps used by corridors, same order as topology neighbors.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

type connector struct {
	g    *grid.Grid
	topo topology.Topology
	opts Options
	sets []*disjoint.Element // by cell index; nil for uncarved cells
	rep  *Report
}

// Connect joins the regions of every pair. Pairs already sharing a region
// cost nothing. The Report is returned even on error.
func Connect(g *grid.Grid, topo topology.Topology, pairs []Pair, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if topo == nil {
		return nil, ErrTopologyNil
	}
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}
	o.Rand = rng.Ensure(o.Rand)

	c := &connector{g: g, topo: topo, opts: o, rep: &Report{}}
	c.group()

	for _, p := range pairs {
		if err := c.join(p); err != nil {
			return c.rep, err
		}
	}
	return c.rep, nil
}

func (c *connector) carved(p grid.Point) bool {
	cell := c.g.CellAt(p)
	return cell != nil && cell.InShape && cell.Visited
}

func (c *connector) set(p grid.Point) *disjoint.Element {
	return c.sets[c.g.Index(p.X, p.Y)]
}

// group builds one element per carved cell and merges along open walls.
func (c *connector) group() {
	c.sets = make([]*disjoint.Element, c.g.Len())
	c.g.ForEach(func(cell *grid.Cell) {
		if cell.InShape && cell.Visited {
			c.sets[c.g.Index(cell.X, cell.Y)] = disjoint.NewElement()
		}
	})
	c.g.ForEach(func(cell *grid.Cell) {
		p := cell.Point()
		if !c.carved(p) {
			return
		}
		for _, q := range topology.OpenNeighbors(c.topo, c.g, p) {
			if c.carved(q) {
				disjoint.Union(c.set(p), c.set(q))
			}
		}
	})
}

func (c *connector) same(a, b grid.Point) bool {
	return c.set(a).Find() == c.set(b).Find()
}

func (c *connector) join(p Pair) error {
	if !c.carved(p.From) || !c.carved(p.To) {
		return fmt.Errorf("%w: %s-%s not carved", ErrUnreachable, p.From, p.To)
	}
	for !c.same(p.From, p.To) {
		ok, err := c.bridge(p.From)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if !c.topo.Orthogonal() {
			return fmt.Errorf("%w: %s-%s", ErrUnreachable, p.From, p.To)
		}
		if err = c.corridor(p.From, p.To); err != nil {
			return err
		}
	}
	return nil
}

type straddle struct{ u, v grid.Point }

// bridge opens one random wall between the From group and another group.
func (c *connector) bridge(from grid.Point) (bool, error) {
	root := c.set(from).Find()
	var cands []straddle
	c.g.ForEach(func(cell *grid.Cell) {
		u := cell.Point()
		if !c.carved(u) || c.set(u).Find() != root {
			return
		}
		for _, v := range c.topo.Neighbors(c.g, u) {
			if c.carved(v) && c.set(v).Find() != root {
				cands = append(cands, straddle{u, v})
			}
		}
	})
	s, ok := rng.Pick(cands, c.opts.Rand)
	if !ok {
		return false, nil
	}
	if err := c.open(s.u, s.v); err != nil {
		return false, err
	}
	c.rep.Bridges++
	return true, nil
}

func (c *connector) open(a, b grid.Point) error {
	if err := c.topo.RemoveWallBetween(c.g, a, b); err != nil {
		return fmt.Errorf("connect: open %s-%s: %w", a, b, err)
	}
	disjoint.Union(c.set(a), c.set(b))
	if c.opts.OnStep != nil {
		if err := c.opts.OnStep(c.g, b); err != nil {
			return fmt.Errorf("connect: step hook at %s: %w", b, err)
		}
	}
	return nil
}

// corridor digs the cheapest lattice path from the From group to the To group.
func (c *connector) corridor(from, to grid.Point) error {
	path := c.cheapest(from, to)
	if path == nil {
		return fmt.Errorf("%w: no corridor %s-%s", ErrUnreachable, from, to)
	}
	for _, p := range path {
		if c.carved(p) {
			continue
		}
		cell := c.g.CellAt(p)
		cell.InShape, cell.Visited = true, true
		cell.Walls = grid.AllWalls()
		c.sets[c.g.Index(p.X, p.Y)] = disjoint.NewElement()
		c.rep.Annexed++
	}
	for i := 1; i < len(path); i++ {
		if c.same(path[i-1], path[i]) {
			continue
		}
		if err := c.open(path[i-1], path[i]); err != nil {
			return err
		}
	}
	c.rep.Corridors++
	return nil
}

// cheapest is a multi-source 0–1 BFS: carved cells cost 0 to enter,
// anything else costs 1. Returns nil when the target group is unreachable.
func (c *connector) cheapest(from, to grid.Point) []grid.Point {
	srcRoot, dstRoot := c.set(from).Find(), c.set(to).Find()
	n := c.g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = inf, -1
	}

	dst := mapset.New[int]()
	dq := list.New()
	for i, e := range c.sets {
		if e == nil {
			continue
		}
		switch e.Find() {
		case srcRoot:
			dist[i] = 0
			dq.PushBack(i)
		case dstRoot:
			dst.Put(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if dst.Has(u) {
			target = u
			break
		}
		up := c.g.Coordinate(u)
		for _, d := range offsets {
			vp := grid.Point{X: up.X + d[0], Y: up.Y + d[1]}
			if !c.g.Contains(vp) {
				continue
			}
			v := c.g.Index(vp.X, vp.Y)
			step := 1
			if c.carved(vp) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v], prev[v] = nd, u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil
	}

	var path []grid.Point
	for at := target; at >= 0; at = prev[at] {
		path = append(path, c.g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
