package shape_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazemaker/shape"
)

// TestParseName covers every built-in name plus an unknown one.
func TestParseName(t *testing.T) {
	cases := []struct {
		in   string
		want shape.Name
	}{
		{"square", shape.Square},
		{"Circle", shape.Circle},
		{" heart ", shape.Heart},
		{"STAR", shape.Star},
		{"hexagon", shape.Hexagon},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := shape.ParseName(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.String(), got.String())
		})
	}

	_, err := shape.ParseName("triangle")
	assert.True(t, errors.Is(err, shape.ErrUnknownShape))
}

// TestByName checks the provider table is consistent with Name.
func TestByName(t *testing.T) {
	for _, n := range []shape.Name{shape.Square, shape.Circle, shape.Heart, shape.Star, shape.Hexagon} {
		p, err := shape.ByName(n)
		require.NoError(t, err)
		assert.Equal(t, n, p.Name())
		assert.NotEmpty(t, p.Path(20, 20))
	}
	_, err := shape.ByName(shape.Name(42))
	assert.ErrorIs(t, err, shape.ErrUnknownShape)
}

// TestSquare_CoversGrid verifies the square admits exactly the cells 0..w-1 × 0..h-1.
func TestSquare_CoversGrid(t *testing.T) {
	const w, h = 10, 7
	poly := shape.NewSquare().Path(w, h)
	for y := -1; y <= h; y++ {
		for x := -1; x <= w; x++ {
			want := x >= 0 && x < w && y >= 0 && y < h
			assert.Equal(t, want, poly.Inside(float64(x), float64(y)), "(%d,%d)", x, y)
		}
	}
}

// TestInside_Idempotent checks repeated membership queries agree.
func TestInside_Idempotent(t *testing.T) {
	for _, p := range []shape.Provider{shape.NewCircle(), shape.NewHeart(), shape.NewStar(), shape.NewHexagon()} {
		poly := p.Path(30, 30)
		for y := 0; y < 30; y++ {
			for x := 0; x < 30; x++ {
				first := poly.Inside(float64(x), float64(y))
				for k := 0; k < 3; k++ {
					require.Equal(t, first, poly.Inside(float64(x), float64(y)), "%s (%d,%d)", p.Name(), x, y)
				}
			}
		}
	}
}

// TestShapes_CenterInside checks every shape contains its canvas center
// and excludes the canvas corners (except the square).
func TestShapes_CenterInside(t *testing.T) {
	for _, p := range []shape.Provider{shape.NewCircle(), shape.NewHeart(), shape.NewStar(), shape.NewHexagon()} {
		poly := p.Path(40, 40)
		assert.True(t, poly.Inside(20, 20), "%s center", p.Name())
		assert.False(t, poly.Inside(0.5, 0.5), "%s corner", p.Name())
		assert.False(t, poly.Inside(39.5, 39.5), "%s corner", p.Name())
	}
}

// TestPolygon_Bounds checks the bounding box of the circle stays on canvas.
func TestPolygon_Bounds(t *testing.T) {
	minX, minY, maxX, maxY := shape.NewCircle().Path(20, 10).Bounds()
	assert.InDelta(t, 5, minX, 1e-9)
	assert.InDelta(t, 0, minY, 1e-3)
	assert.InDelta(t, 15, maxX, 1e-9)
	assert.InDelta(t, 10, maxY, 1e-3)

	var empty shape.Polygon
	a, b, c, d := empty.Bounds()
	assert.Zero(t, a+b+c+d)
	assert.False(t, empty.Inside(0, 0))
}

// TestName_Text round-trips a name through its text form.
func TestName_Text(t *testing.T) {
	var n shape.Name
	require.NoError(t, n.UnmarshalText([]byte("star")))
	assert.Equal(t, shape.Star, n)
	b, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "star", string(b))
	assert.Error(t, n.UnmarshalText([]byte("blob")))
}
