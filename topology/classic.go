package topology

import (
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
)

// Classic is the orthogonal lattice cut to a boundary shape:
// a cell is in shape when the shape's polygon contains its (x,y) corner.
type Classic struct{ lattice }

// Style returns grid.StyleClassic.
func (Classic) Style() grid.Style { return grid.StyleClassic }

// Build marks every cell whose coordinates fall inside sp's outline.
func (Classic) Build(width, height int, sp shape.Provider) (*grid.Grid, error) {
	if sp == nil {
		return nil, ErrShapeNil
	}
	g, err := grid.New(width, height, grid.StyleClassic)
	if err != nil {
		return nil, err
	}
	poly := sp.Path(width, height)
	markInShape(g, func(x, y int) bool {
		return poly.Inside(float64(x), float64(y))
	})
	return g, nil
}
