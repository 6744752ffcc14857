package topology

import (
	"math"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
)

// HexSize returns the tile edge used by Honeycomb for a grid of the given width.
func HexSize(width int) int {
	return max(2, width/8)
}

// Honeycomb approximates hex tiles on the square lattice: tiles of HexSize
// cells are laid in a checkerboard of two overlapping patterns, and every
// other row is shifted right by half a tile. Adjacency stays four-neighbor.
// The boundary shape is ignored.
type Honeycomb struct{ lattice }

// Style returns grid.StyleHoneycomb.
func (Honeycomb) Style() grid.Style { return grid.StyleHoneycomb }

// Build marks the tile cells.
func (Honeycomb) Build(width, height int, _ shape.Provider) (*grid.Grid, error) {
	g, err := grid.New(width, height, grid.StyleHoneycomb)
	if err != nil {
		return nil, err
	}
	hex := float64(HexSize(width))
	period := 2 * hex
	markInShape(g, func(x, y int) bool {
		// half-tile shift may be fractional for odd tile sizes
		xPos := float64(x) + float64(y%2)*hex/2
		fy := float64(y)
		return (math.Mod(xPos, period) < hex && math.Mod(fy, period) < hex) ||
			(math.Mod(xPos+hex, period) < hex && math.Mod(fy+hex, period) < hex)
	})
	return g, nil
}
