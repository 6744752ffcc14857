package carve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazemaker/carve"
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/topology"
)

func newGrid(t testing.TB, style grid.Style, w, h int, sp shape.Provider) (topology.Topology, *grid.Grid) {
	t.Helper()
	topo, err := topology.New(style)
	require.NoError(t, err)
	g, err := topo.Build(w, h, sp)
	require.NoError(t, err)
	return topo, g
}

// reachable counts cells reachable from p through open walls.
func reachable(topo topology.Topology, g *grid.Grid, p grid.Point) int {
	seen := map[grid.Point]bool{p: true}
	queue := []grid.Point{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, q := range topology.OpenNeighbors(topo, g, cur) {
			if !seen[q] {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return len(seen)
}

// openEdges counts undirected open passages between in-shape neighbors.
func openEdges(topo topology.Topology, g *grid.Grid) int {
	n := 0
	g.ForEach(func(c *grid.Cell) {
		if c.InShape {
			n += len(topology.OpenNeighbors(topo, g, c.Point()))
		}
	})
	return n / 2
}

func TestCarve_Errors(t *testing.T) {
	topo, g := newGrid(t, grid.StyleClassic, 4, 4, shape.NewSquare())

	_, err := carve.Carve(nil, topo, grid.Point{})
	assert.ErrorIs(t, err, carve.ErrGridNil)

	_, err = carve.Carve(g, nil, grid.Point{})
	assert.ErrorIs(t, err, carve.ErrTopologyNil)

	_, err = carve.Carve(g, topo, grid.Point{X: 9, Y: 0})
	assert.ErrorIs(t, err, carve.ErrSeedOutOfBounds)

	g.At(1, 1).InShape = false
	_, err = carve.Carve(g, topo, grid.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, carve.ErrSeedNotInShape)
}

func TestCarve_PerfectMaze(t *testing.T) {
	cases := []struct {
		name  string
		style grid.Style
		shape shape.Provider
		w, h  int
	}{
		{"classic square", grid.StyleClassic, shape.NewSquare(), 12, 9},
		{"classic heart", grid.StyleClassic, shape.NewHeart(), 20, 20},
		{"zigzag", grid.StyleZigzag, nil, 10, 7},
		{"honeycomb", grid.StyleHoneycomb, nil, 16, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topo, g := newGrid(t, tc.style, tc.w, tc.h, tc.shape)
			var seed grid.Point
			found := false
			g.ForEach(func(c *grid.Cell) {
				if !found && c.InShape {
					seed, found = c.Point(), true
				}
			})
			require.True(t, found)

			res, err := carve.Carve(g, topo, seed, carve.WithSeed(7))
			require.NoError(t, err)
			assert.Equal(t, len(res.Visited)-1, res.Passages)
			assert.Equal(t, res.Passages, openEdges(topo, g), "tree has V-1 edges")
			assert.Equal(t, len(res.Visited), reachable(topo, g, seed))
			for _, p := range res.Visited {
				assert.True(t, g.CellAt(p).Visited)
			}
		})
	}
}

func TestCarve_SquareCoversAll(t *testing.T) {
	topo, g := newGrid(t, grid.StyleClassic, 8, 8, shape.NewSquare())
	res, err := carve.Carve(g, topo, grid.Point{X: 3, Y: 3}, carve.WithSeed(1))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 64)
	assert.Equal(t, 63, res.Passages)
	assert.Equal(t, grid.Point{X: 3, Y: 3}, res.Visited[0])
}

func TestCarve_Spiral(t *testing.T) {
	topo, g := newGrid(t, grid.StyleSpiral, 24, 24, nil)
	var seed grid.Point
	g.ForEach(func(c *grid.Cell) {
		if c.InShape && c.Ring == 0 && c.Segment == 0 {
			seed = c.Point()
		}
	})
	res, err := carve.Carve(g, topo, seed, carve.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, len(res.Visited)-1, res.Passages)
	assert.Equal(t, res.Passages, openEdges(topo, g), "tree has V-1 edges")
	assert.Equal(t, len(res.Visited), reachable(topo, g, seed))
}

func TestCarve_Deterministic(t *testing.T) {
	topo, g1 := newGrid(t, grid.StyleClassic, 10, 10, shape.NewSquare())
	_, g2 := newGrid(t, grid.StyleClassic, 10, 10, shape.NewSquare())
	_, err := carve.Carve(g1, topo, grid.Point{}, carve.WithSeed(42))
	require.NoError(t, err)
	_, err = carve.Carve(g2, topo, grid.Point{}, carve.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, g1.String(), g2.String())
}

func TestCarve_VisitedSeedIsNoop(t *testing.T) {
	topo, g := newGrid(t, grid.StyleClassic, 3, 3, shape.NewSquare())
	g.At(0, 0).Visited = true
	res, err := carve.Carve(g, topo, grid.Point{})
	require.NoError(t, err)
	assert.Empty(t, res.Visited)
	assert.Zero(t, res.Passages)
}

func TestCarve_OnStep(t *testing.T) {
	topo, g := newGrid(t, grid.StyleClassic, 5, 4, shape.NewSquare())
	steps := 0
	res, err := carve.Carve(g, topo, grid.Point{}, carve.WithOnStep(func(_ *grid.Grid, _ grid.Point) error {
		steps++
		return nil
	}))
	require.NoError(t, err)
	// one call per push and one per pop
	assert.Equal(t, 2*len(res.Visited), steps)
}

func TestCarve_OnStepAbort(t *testing.T) {
	topo, g := newGrid(t, grid.StyleClassic, 5, 4, shape.NewSquare())
	boom := errors.New("boom")
	steps := 0
	_, err := carve.Carve(g, topo, grid.Point{}, carve.WithOnStep(func(_ *grid.Grid, _ grid.Point) error {
		steps++
		if steps == 3 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, steps)
}

func TestCarve_ContextCanceled(t *testing.T) {
	topo, g := newGrid(t, grid.StyleClassic, 5, 4, shape.NewSquare())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := carve.Carve(g, topo, grid.Point{}, carve.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithRandNilPanics(t *testing.T) {
	assert.Panics(t, func() { carve.WithRand(nil) })
}
