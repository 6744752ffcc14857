package carve_test

import (
	"fmt"

	"github.com/katalvlaran/mazemaker/carve"
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/topology"
)

// ExampleCarve carves a one-row corridor: every step has a single choice,
// so the result does not depend on the seed.
func ExampleCarve() {
	topo := topology.Classic{}
	g, _ := topo.Build(3, 1, shape.NewSquare())

	res, err := carve.Carve(g, topo, grid.Point{X: 0, Y: 0}, carve.WithSeed(99))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("passages:", res.Passages)
	fmt.Print(g)
	// Output:
	// passages: 2
	// +---+---+---+
	// |           |
	// +---+---+---+
}
