package topology

import (
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
)

// ZigzagPathWidth is the band height of the zig-zag corridor.
const ZigzagPathWidth = 2

// Zigzag partitions rows into bands of ZigzagPathWidth. The first row of
// every band is open end to end; the remaining rows keep only the two
// horizontal extremes, so consecutive bands join at alternating ends.
// The boundary shape is ignored.
type Zigzag struct{ lattice }

// Style returns grid.StyleZigzag.
func (Zigzag) Style() grid.Style { return grid.StyleZigzag }

// Build marks the corridor cells.
func (Zigzag) Build(width, height int, _ shape.Provider) (*grid.Grid, error) {
	g, err := grid.New(width, height, grid.StyleZigzag)
	if err != nil {
		return nil, err
	}
	markInShape(g, func(x, y int) bool {
		band := y / ZigzagPathWidth
		off := x
		if band%2 == 1 {
			off = width - 1 - x // bands alternate direction
		}
		return y%ZigzagPathWidth == 0 || off == 0 || off == width-1
	})
	return g, nil
}
