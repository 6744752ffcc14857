package topology

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
)

// New returns the topology for style.
func New(style grid.Style) (Topology, error) {
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
