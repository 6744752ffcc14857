package placement

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/topology"
)

var (
	// ErrPlacement indicates that no valid entrance or exit could be placed.
	ErrPlacement = errors.New("placement: no valid boundary point")

	// ErrUnknownStyle indicates a style with no placement policy.
	ErrUnknownStyle = errors.New("placement: unknown style")
)

// Retry budgets.
const (
	EdgeTries      = 100
	SpiralTries    = 8
	HoneycombTries = 10
)

// Selection is the outcome of one placement run.
// Entrances[i] is paired with Exits[i].
type Selection struct {
	Entrances []grid.BoundaryPoint
	Exits     []grid.BoundaryPoint

	// Seeds are the start cells of a multi-seed carve, in carving order.
	// Single-entrance mazes grow from Exits[0] alone.
	Seeds []grid.Point
}

// Pairs returns the number of entrance/exit pairs.
func (s *Selection) Pairs() int {
	return min(len(s.Entrances), len(s.Exits))
}

// Selector places boundary points on g. entrances is the requested
// entrance count; only the classic policy honors values above one.
type Selector interface {
	Select(g *grid.Grid, topo topology.Topology, entrances int, r rng.Rand) (*Selection, error)
}

// ForStyle returns the placement policy for style.
func ForStyle(style grid.Style) (Selector, error) {
	switch style {
	case grid.StyleClassic:
		return Classic{}, nil
	case grid.StyleSpiral:
		return Spiral{}, nil
	case grid.StyleZigzag:
		return Zigzag{}, nil
	case grid.StyleHoneycomb:
		return Honeycomb{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
}
