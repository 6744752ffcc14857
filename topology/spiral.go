package topology

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
)

// Spiral lays concentric rings around the grid center. Ring r samples a
// circle of radius (r+1)·2 at NumSegments(r) equally spaced angles; the
// last sample to land on a cell owns it. Adjacency (clockwise and
// counter-clockwise along the ring, one ring inward and outward) is
// resolved through the sampled cells and stored symmetrically on the grid.
//
// Passages are stored per link on the grid, so opening one link never
// opens another. The radial wall flags are kept as a summary: the
// clockwise flag of two ring-mates belongs to the cell whose successor
// segment is the other one, and the flag between rings is the inner
// cell's Outward.
type Spiral struct{}

// Style returns grid.StyleSpiral.
func (Spiral) Style() grid.Style { return grid.StyleSpiral }

// NumSegments is max(16, ⌊2π·(ring+1)·2⌋).
func (Spiral) NumSegments(ring int) int {
	if ring < 0 {
		return 0
	}
	return max(16, int(math.Floor(2*math.Pi*float64(ring+1)*2)))
}

// Rings returns the ring count for a width×height grid.
func Rings(width, height int) int {
	maxRadius := float64(min(width, height))/2 - 2
	if maxRadius <= 0 {
		return 0
	}
	return int(math.Floor(maxRadius / 2))
}

// Center returns the integer center of a width×height grid.
func Center(width, height int) grid.Point {
	return grid.Point{X: width / 2, Y: height / 2}
}

// PolarPoint projects (radius, angle) around the grid center onto a cell.
func PolarPoint(width, height int, radius, angle float64) grid.Point {
	c := Center(width, height)
	return grid.Point{
		X: int(math.Floor(float64(c.X) + radius*math.Cos(angle))),
		Y: int(math.Floor(float64(c.Y) + radius*math.Sin(angle))),
	}
}

// SamplePoint is the cell sampled by (ring, segment).
func (s Spiral) SamplePoint(width, height, ring, segment int) grid.Point {
	return PolarPoint(width, height, float64(ring+1)*2, s.angle(ring, segment))
}

func (s Spiral) angle(ring, segment int) float64 {
	return float64(segment) / float64(s.NumSegments(ring)) * 2 * math.Pi
}

// Build samples the rings and resolves the adjacency. The shape is ignored;
// spiral mazes are always circular.
func (s Spiral) Build(width, height int, _ shape.Provider) (*grid.Grid, error) {
	g, err := grid.New(width, height, grid.StyleSpiral)
	if err != nil {
		return nil, err
	}

	rings := Rings(width, height)
	for r := 0; r < rings; r++ {
		n := s.NumSegments(r)
		for seg := 0; seg < n; seg++ {
			c := g.CellAt(s.SamplePoint(width, height, r, seg))
			if c == nil {
				continue
			}
			c.InShape, c.Visited = true, false
			c.Ring, c.Segment = r, seg
		}
	}

	g.ForEach(func(c *grid.Cell) {
		if !c.InShape {
			return
		}
		p := c.Point()
		for _, q := range s.candidates(width, height, c.Ring, c.Segment) {
			if q != p && g.InShape(q) {
				g.Link(p, q)
			}
		}
	})
	return g, nil
}

// candidates lists the raw polar neighbors of (ring, seg):
// clockwise, counter-clockwise, inward, outward.
func (s Spiral) candidates(width, height, ring, seg int) []grid.Point {
	n := s.NumSegments(ring)
	radius := float64(ring+1) * 2
	out := []grid.Point{
		PolarPoint(width, height, radius, s.angle(ring, (seg+1)%n)),
		PolarPoint(width, height, radius, s.angle(ring, (seg-1+n)%n)),
	}
	if ring > 0 {
		out = append(out, PolarPoint(width, height, float64(ring)*2, s.angle(ring, seg)))
	}
	out = append(out, PolarPoint(width, height, float64(ring+2)*2, s.angle(ring, seg)))
	return out
}

// Neighbors returns the stored links of p in build order.
func (Spiral) Neighbors(g *grid.Grid, p grid.Point) []grid.Point {
	return g.Links(p)
}

// wallOf resolves the single flag that stores the wall between a and b.
func (s Spiral) wallOf(g *grid.Grid, a, b grid.Point) (*bool, error) {
	ca, cb := g.CellAt(a), g.CellAt(b)
	if ca == nil || cb == nil {
		return nil, fmt.Errorf("%w: %s-%s", ErrOutOfBounds, a, b)
	}
	if !slices.Contains(g.Links(a), b) {
		return nil, fmt.Errorf("%w: %s-%s", ErrNotAdjacent, a, b)
	}

	if ca.Ring != cb.Ring {
		if ca.Ring < cb.Ring {
			return &ca.Walls.Outward, nil
		}
		return &cb.Walls.Outward, nil
	}

	n := s.NumSegments(ca.Ring)
	switch {
	case (ca.Segment+1)%n == cb.Segment:
		return &ca.Walls.Clockwise, nil
	case (cb.Segment+1)%n == ca.Segment:
		return &cb.Walls.Clockwise, nil
	case ca.Segment < cb.Segment,
		ca.Segment == cb.Segment && g.Index(a.X, a.Y) < g.Index(b.X, b.Y):
		// ring-mates joined through a skipped sample
		return &ca.Walls.Clockwise, nil
	}
	return &cb.Walls.Clockwise, nil
}

// RemoveWallBetween opens the a–b link and clears its owner flag.
func (s Spiral) RemoveWallBetween(g *grid.Grid, a, b grid.Point) error {
	w, err := s.wallOf(g, a, b)
	if err != nil {
		return err
	}
	g.OpenLink(a, b)
	*w = false
	return nil
}

// HasWallBetween reports whether the a–b link is still closed;
// non-neighbors are walled.
func (Spiral) HasWallBetween(g *grid.Grid, a, b grid.Point) bool {
	return !g.LinkOpen(a, b)
}

// Heuristic returns 0: floored polar samples give no admissible bound on
// the number of link steps, so A* degrades to uniform-cost search.
func (Spiral) Heuristic(*grid.Grid, grid.Point, grid.Point) int { return 0 }

// Orthogonal returns false.
func (Spiral) Orthogonal() bool { return false }
