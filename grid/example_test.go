package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
)

// ExampleGrid_Render shows a 2×1 corridor with the middle wall removed
// and a path drawn through both cells.
func ExampleGrid_Render() {
	g, _ := grid.New(2, 1, grid.StyleClassic)
	for x := 0; x < 2; x++ {
		g.At(x, 0).InShape = true
	}
	g.At(0, 0).Walls.Right = false
	g.At(1, 0).Walls.Left = false

	fmt.Print(g.Render(grid.Path{{X: 0, Y: 0}, {X: 1, Y: 0}}))
	// Output:
	// +---+---+
	// | *   * |
	// +---+---+
}
