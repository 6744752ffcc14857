package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrUnknownStyle indicates a style name outside the style table.
	ErrUnknownStyle = errors.New("grid: unknown style")
)

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Style selects the lattice a grid was built for.
type Style int

const (
	// StyleClassic is the orthogonal lattice cut to a boundary shape.
	StyleClassic Style = iota
	// StyleSpiral is the concentric-ring lattice.
	StyleSpiral
	// StyleZigzag is the serpentine corridor lattice.
	StyleZigzag
	// StyleHoneycomb is the offset hex-tile lattice.
	StyleHoneycomb
)

var styleNames = [...]string{"classic", "spiral", "zigzag", "honeycomb"}

// String returns the lower-case style name.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle maps a case-insensitive name onto a Style.
func ParseStyle(s string) (Style, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range styleNames {
		if v == s {
			return Style(i), nil
		}
	}
	return StyleClassic, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Side tags where a boundary point sits.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
	SideOuter
	SideCenter
)

var sideNames = [...]string{"none", "top", "right", "bottom", "left", "outer", "center"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// Walls records which walls of a cell are present (true = wall).
type Walls struct {
	Top, Right, Bottom, Left bool // orthogonal model
	Clockwise, Outward       bool // radial model
}

// AllWalls returns a wall set with every wall present.
func AllWalls() Walls {
	return Walls{Top: true, Right: true, Bottom: true, Left: true, Clockwise: true, Outward: true}
}

// Cell is one lattice position and its carving state.
type Cell struct {
	X, Y    int
	InShape bool // participates in the maze
	Visited bool // carving-phase marker
	Walls   Walls
	Ring    int // radial ring index, -1 outside the rings
	Segment int // radial segment index, -1 outside the rings
}

// Point returns the cell's coordinates.
func (c *Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// BoundaryPoint is an entrance or exit marker.
// Side is SideOuter or SideCenter for radial grids, where Ring and Segment
// carry the polar address; orthogonal grids leave them at -1.
type BoundaryPoint struct {
	X, Y    int
	Side    Side
	Ring    int
	Segment int
}

// Point returns the marker's cell coordinates.
func (b BoundaryPoint) Point() Point {
	return Point{X: b.X, Y: b.Y}
}

// String formats the marker as "x,y/side".
func (b BoundaryPoint) String() string {
	return fmt.Sprintf("%d,%d/%s", b.X, b.Y, b.Side)
}

// Path is an ordered run of pairwise-adjacent cells without repeats.
type Path []Point

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Start returns the first cell; ok is false for an empty path.
func (p Path) Start() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0], true
}

// End returns the last cell; ok is false for an empty path.
func (p Path) End() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Contains reports whether pt lies on the path.
func (p Path) Contains(pt Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

// Clone returns an independent copy; nil stays nil.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}
