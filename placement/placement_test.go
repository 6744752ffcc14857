package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/placement"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/topology"
)

func build(t *testing.T, style grid.Style, w, h int) (topology.Topology, *grid.Grid) {
	t.Helper()
	topo, err := topology.New(style)
	require.NoError(t, err)
	g, err := topo.Build(w, h, shape.NewSquare())
	require.NoError(t, err)
	return topo, g
}

func selectFor(t *testing.T, style grid.Style, w, h, entrances int, seed int64) (*grid.Grid, *placement.Selection, error) {
	t.Helper()
	topo, g := build(t, style, w, h)
	sel, err := placement.ForStyle(style)
	require.NoError(t, err)
	s, err := sel.Select(g, topo, entrances, rng.New(seed))
	return g, s, err
}

func onEdge(g *grid.Grid, bp grid.BoundaryPoint) bool {
	switch bp.Side {
	case grid.SideTop:
		return bp.Y == 0 && bp.X > 0 && bp.X < g.Width-1
	case grid.SideBottom:
		return bp.Y == g.Height-1 && bp.X > 0 && bp.X < g.Width-1
	case grid.SideLeft:
		return bp.X == 0 && bp.Y > 0 && bp.Y < g.Height-1
	case grid.SideRight:
		return bp.X == g.Width-1 && bp.Y > 0 && bp.Y < g.Height-1
	}
	return false
}

func gapCut(g *grid.Grid, bp grid.BoundaryPoint) bool {
	w := g.CellAt(bp.Point()).Walls
	switch bp.Side {
	case grid.SideTop:
		return !w.Top
	case grid.SideRight:
		return !w.Right
	case grid.SideBottom:
		return !w.Bottom
	case grid.SideLeft:
		return !w.Left
	case grid.SideOuter:
		return !w.Outward
	}
	return false
}

func TestForStyle(t *testing.T) {
	for _, s := range []grid.Style{grid.StyleClassic, grid.StyleSpiral, grid.StyleZigzag, grid.StyleHoneycomb} {
		sel, err := placement.ForStyle(s)
		require.NoError(t, err)
		assert.NotNil(t, sel)
	}
	_, err := placement.ForStyle(grid.Style(-3))
	assert.ErrorIs(t, err, placement.ErrUnknownStyle)
}

func TestClassicSingle(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, s, err := selectFor(t, grid.StyleClassic, 10, 10, 1, seed)
		require.NoError(t, err)
		require.Len(t, s.Entrances, 1)
		require.Len(t, s.Exits, 1)

		exit := s.Exits[0]
		assert.Equal(t, grid.SideCenter, exit.Side)
		assert.Equal(t, grid.Point{X: 4, Y: 4}, exit.Point())
		assert.Equal(t, grid.AllWalls(), g.CellAt(exit.Point()).Walls, "center exit keeps its walls")

		entry := s.Entrances[0]
		assert.True(t, onEdge(g, entry), "entry %s", entry)
		assert.True(t, gapCut(g, entry), "entry %s", entry)
		assert.Equal(t, -1, entry.Ring)

		assert.Equal(t, []grid.Point{exit.Point()}, s.Seeds)
		assert.Equal(t, 1, s.Pairs())
	}
}

func TestClassicMulti(t *testing.T) {
	cases := []struct{ entrances, pairs int }{{2, 1}, {3, 2}, {4, 2}, {6, 3}}
	for _, tc := range cases {
		g, s, err := selectFor(t, grid.StyleClassic, 10, 10, tc.entrances, 5)
		require.NoError(t, err)
		assert.Equal(t, tc.pairs, s.Pairs())
		require.Len(t, s.Seeds, 2*tc.pairs)
		for i, bp := range append(append([]grid.BoundaryPoint{}, s.Entrances...), s.Exits...) {
			assert.True(t, onEdge(g, bp), "point %s", bp)
			assert.True(t, gapCut(g, bp), "point %s", bp)
			assert.Equal(t, bp.Point(), s.Seeds[i], "seeds are entrances then exits")
		}
	}
}

func TestClassicDegenerate(t *testing.T) {
	_, _, err := selectFor(t, grid.StyleClassic, 1, 1, 1, 1)
	assert.ErrorIs(t, err, placement.ErrPlacement)

	_, _, err = selectFor(t, grid.StyleClassic, 2, 2, 2, 1)
	assert.ErrorIs(t, err, placement.ErrPlacement)
}

func TestClassicNoCenter(t *testing.T) {
	topo, g := build(t, grid.StyleClassic, 9, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.At(4+dx, 4+dy).InShape = false
		}
	}
	_, err := placement.Classic{}.Select(g, topo, 1, rng.New(1))
	assert.ErrorIs(t, err, placement.ErrPlacement)
}

func TestSpiral(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, s, err := selectFor(t, grid.StyleSpiral, 20, 20, 1, seed)
		if err != nil {
			assert.ErrorIs(t, err, placement.ErrPlacement)
			continue
		}
		exit, entry := s.Exits[0], s.Entrances[0]
		assert.Equal(t, grid.SideCenter, exit.Side)
		assert.GreaterOrEqual(t, exit.Ring, 0)
		assert.Equal(t, grid.SideOuter, entry.Side)
		assert.Equal(t, topology.Rings(20, 20)-1, entry.Ring)
		assert.True(t, gapCut(g, entry))
		assert.Equal(t, []grid.Point{exit.Point(), entry.Point()}, s.Seeds)
	}

	_, _, err := selectFor(t, grid.StyleSpiral, 6, 6, 1, 1)
	assert.ErrorIs(t, err, placement.ErrPlacement, "no rings")
}

func TestZigzag(t *testing.T) {
	g, s, err := selectFor(t, grid.StyleZigzag, 6, 5, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.BoundaryPoint{X: 1, Y: 0, Side: grid.SideTop, Ring: -1, Segment: -1}, s.Entrances[0])
	assert.Equal(t, grid.Point{X: 4, Y: 4}, s.Exits[0].Point())
	assert.True(t, gapCut(g, s.Entrances[0]))
	assert.True(t, gapCut(g, s.Exits[0]))

	// odd last row keeps only its extremes
	_, s, err = selectFor(t, grid.StyleZigzag, 6, 4, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 5, Y: 3}, s.Exits[0].Point())
	assert.Equal(t, grid.SideBottom, s.Exits[0].Side)

	_, _, err = selectFor(t, grid.StyleZigzag, 1, 1, 1, 1)
	assert.ErrorIs(t, err, placement.ErrPlacement)
}

func TestHoneycomb(t *testing.T) {
	ok := 0
	for seed := int64(1); seed <= 20; seed++ {
		g, s, err := selectFor(t, grid.StyleHoneycomb, 16, 16, 1, seed)
		if err != nil {
			assert.ErrorIs(t, err, placement.ErrPlacement)
			continue
		}
		ok++
		entry, exit := s.Entrances[0], s.Exits[0]
		assert.Equal(t, 0, entry.X)
		assert.Equal(t, 15, exit.X)
		for _, bp := range []grid.BoundaryPoint{entry, exit} {
			assert.GreaterOrEqual(t, bp.Y, 5)
			assert.Less(t, bp.Y, 11)
			assert.True(t, g.InShape(bp.Point()))
			assert.True(t, gapCut(g, bp))
		}
	}
	assert.Positive(t, ok)
}

func TestCutGap(t *testing.T) {
	g, err := grid.New(3, 3, grid.StyleClassic)
	require.NoError(t, err)

	placement.CutGap(g, grid.BoundaryPoint{X: 0, Y: 1, Side: grid.SideLeft})
	assert.False(t, g.At(0, 1).Walls.Left)

	placement.CutGap(g, grid.BoundaryPoint{X: 1, Y: 1, Side: grid.SideCenter})
	assert.Equal(t, grid.AllWalls(), g.At(1, 1).Walls)

	placement.CutGap(g, grid.BoundaryPoint{X: 7, Y: 7, Side: grid.SideTop})
}
