package solve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazemaker/carve"
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/solve"
	"github.com/katalvlaran/mazemaker/topology"
)

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

// open builds a w×h square lattice with every interior wall removed.
func open(t testing.TB, w, h int) (topology.Topology, *grid.Grid) {
	t.Helper()
	topo := topology.Classic{}
	g, err := topo.Build(w, h, shape.NewSquare())
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				require.NoError(t, topo.RemoveWallBetween(g, pt(x, y), pt(x+1, y)))
			}
			if y+1 < h {
				require.NoError(t, topo.RemoveWallBetween(g, pt(x, y), pt(x, y+1)))
			}
		}
	}
	return topo, g
}

// carved builds and carves a maze from the first in-shape cell.
func carved(t testing.TB, style grid.Style, w, h int, seed int64) (topology.Topology, *grid.Grid, grid.Point) {
	t.Helper()
	topo, err := topology.New(style)
	require.NoError(t, err)
	g, err := topo.Build(w, h, shape.NewSquare())
	require.NoError(t, err)
	var first grid.Point
	found := false
	g.ForEach(func(c *grid.Cell) {
		if !found && c.InShape {
			first, found = c.Point(), true
		}
	})
	require.True(t, found)
	_, err = carve.Carve(g, topo, first, carve.WithSeed(seed))
	require.NoError(t, err)
	return topo, g, first
}

var strategies = []solve.Strategy{solve.StrategyBFS, solve.StrategyAStar}

func TestSolve_Errors(t *testing.T) {
	topo, g := open(t, 3, 3)
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			_, err := solve.Solve(s, nil, topo, pt(0, 0), pt(1, 1))
			assert.ErrorIs(t, err, solve.ErrGridNil)
			_, err = solve.Solve(s, g, nil, pt(0, 0), pt(1, 1))
			assert.ErrorIs(t, err, solve.ErrTopologyNil)
			_, err = solve.Solve(s, g, topo, pt(-1, 0), pt(1, 1))
			assert.ErrorIs(t, err, solve.ErrBadEndpoint)
			_, err = solve.Solve(s, g, topo, pt(0, 0), pt(3, 3))
			assert.ErrorIs(t, err, solve.ErrBadEndpoint)
		})
	}
	_, err := solve.Solve(solve.Strategy(7), g, topo, pt(0, 0), pt(1, 1))
	assert.ErrorIs(t, err, solve.ErrUnknownStrategy)
}

func TestSolve_NotInShape(t *testing.T) {
	topo, g := open(t, 3, 3)
	g.At(2, 2).InShape = false
	_, err := solve.BFS(g, topo, pt(0, 0), pt(2, 2))
	assert.ErrorIs(t, err, solve.ErrBadEndpoint)
}

func TestSolve_StartIsEnd(t *testing.T) {
	topo, g := open(t, 2, 2)
	for _, s := range strategies {
		p, err := solve.Solve(s, g, topo, pt(1, 1), pt(1, 1))
		require.NoError(t, err)
		assert.Equal(t, grid.Path{pt(1, 1)}, p)
	}
}

func TestSolve_NoPath(t *testing.T) {
	topo := topology.Classic{}
	g, err := topo.Build(3, 1, shape.NewSquare())
	require.NoError(t, err)
	require.NoError(t, topo.RemoveWallBetween(g, pt(0, 0), pt(1, 0)))
	for _, s := range strategies {
		_, err := solve.Solve(s, g, topo, pt(0, 0), pt(2, 0))
		assert.ErrorIs(t, err, solve.ErrNoPath, s.String())
	}
}

func TestSolve_TieBreak(t *testing.T) {
	topo, g := open(t, 2, 2)
	want := grid.Path{pt(0, 0), pt(1, 0), pt(1, 1)}
	for _, s := range strategies {
		p, err := solve.Solve(s, g, topo, pt(0, 0), pt(1, 1))
		require.NoError(t, err)
		assert.Equal(t, want, p, s.String())
	}
}

func TestSolve_ShortestOnOpenGrid(t *testing.T) {
	topo, g := open(t, 6, 5)
	for _, s := range strategies {
		p, err := solve.Solve(s, g, topo, pt(0, 0), pt(5, 4))
		require.NoError(t, err)
		assert.Len(t, p, 10, s.String())
		assert.NoError(t, solve.Walk(g, topo, p))
	}
}

func TestSolve_StrategiesAgree(t *testing.T) {
	cases := []struct {
		name  string
		style grid.Style
		w, h  int
	}{
		{"classic", grid.StyleClassic, 15, 11},
		{"zigzag", grid.StyleZigzag, 9, 9},
		{"honeycomb", grid.StyleHoneycomb, 16, 16},
		{"spiral", grid.StyleSpiral, 24, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topo, g, start := carved(t, tc.style, tc.w, tc.h, 11)
			// every carved cell is reachable from start
			g.ForEach(func(c *grid.Cell) {
				if !c.InShape || !c.Visited {
					return
				}
				end := c.Point()
				bfs, err := solve.BFS(g, topo, start, end)
				require.NoError(t, err)
				ast, err := solve.AStar(g, topo, start, end)
				require.NoError(t, err)
				assert.Equal(t, len(bfs), len(ast), "%s→%s", start, end)
				assert.Equal(t, start, bfs[0])
				assert.Equal(t, end, bfs[len(bfs)-1])
				assert.NoError(t, solve.Walk(g, topo, bfs))
				assert.NoError(t, solve.Walk(g, topo, ast))
			})
		})
	}
}

func TestBFS_OnExpand(t *testing.T) {
	topo, g := open(t, 3, 1)
	var seen []grid.Point
	var last grid.Path
	p, err := solve.BFS(g, topo, pt(0, 0), pt(2, 0), solve.WithOnExpand(func(path grid.Path, cur grid.Point) error {
		seen = append(seen, cur)
		last = path
		assert.Equal(t, cur, path[len(path)-1])
		assert.Equal(t, pt(0, 0), path[0])
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{pt(0, 0), pt(1, 0), pt(2, 0)}, seen)
	assert.Equal(t, p, last)
}

func TestSolve_HookAbort(t *testing.T) {
	topo, g := open(t, 4, 4)
	boom := errors.New("boom")
	for _, s := range strategies {
		_, err := solve.Solve(s, g, topo, pt(0, 0), pt(3, 3), solve.WithOnExpand(func(grid.Path, grid.Point) error {
			return boom
		}))
		assert.ErrorIs(t, err, boom)
	}
}

func TestSolve_ContextCanceled(t *testing.T) {
	topo, g := open(t, 4, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range strategies {
		_, err := solve.Solve(s, g, topo, pt(0, 0), pt(3, 3), solve.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWalk(t *testing.T) {
	topo := topology.Classic{}
	g, err := topo.Build(3, 2, shape.NewSquare())
	require.NoError(t, err)
	require.NoError(t, topo.RemoveWallBetween(g, pt(0, 0), pt(1, 0)))
	require.NoError(t, topo.RemoveWallBetween(g, pt(1, 0), pt(1, 1)))

	assert.NoError(t, solve.Walk(g, topo, grid.Path{pt(0, 0), pt(1, 0), pt(1, 1)}))
	assert.NoError(t, solve.Walk(g, topo, grid.Path{pt(2, 1)}))

	cases := map[string]grid.Path{
		"empty":    {},
		"gap":      {pt(0, 0), pt(1, 1)},
		"wall":     {pt(1, 0), pt(2, 0)},
		"repeat":   {pt(0, 0), pt(1, 0), pt(0, 0)},
		"outside":  {pt(0, 0), pt(-1, 0)},
		"diagonal": {pt(0, 0), pt(1, 1)},
	}
	for name, p := range cases {
		assert.ErrorIs(t, solve.Walk(g, topo, p), solve.ErrBrokenPath, name)
	}
	assert.ErrorIs(t, solve.Walk(nil, topo, nil), solve.ErrGridNil)
	assert.ErrorIs(t, solve.Walk(g, nil, nil), solve.ErrTopologyNil)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]solve.Strategy{
		"bfs": solve.StrategyBFS, "BFS": solve.StrategyBFS,
		"astar": solve.StrategyAStar, "A*": solve.StrategyAStar, " a-star ": solve.StrategyAStar,
	} {
		got, err := solve.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := solve.ParseStrategy("dfs")
	assert.ErrorIs(t, err, solve.ErrUnknownStrategy)

	var s solve.Strategy
	require.NoError(t, s.UnmarshalText([]byte("astar")))
	assert.Equal(t, solve.StrategyAStar, s)
	b, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "astar", string(b))
	assert.Equal(t, "strategy(9)", solve.Strategy(9).String())
}
