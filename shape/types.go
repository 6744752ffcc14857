package shape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape indicates a shape name outside the built-in table.
var ErrUnknownShape = errors.New("shape: unknown shape")

// Name identifies a built-in boundary shape.
type Name int

const (
	// Square covers the whole canvas.
	Square Name = iota
	// Circle is a 64-gon inscribed in the canvas.
	Circle
	// Heart is the classic parametric heart curve.
	Heart
	// Star is a five-pointed star.
	Star
	// Hexagon is a regular hexagon inscribed in the canvas.
	Hexagon
)

var names = [...]string{"square", "circle", "heart", "star", "hexagon"}

// String returns the lower-case shape name.
func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("shape(%d)", int(n))
	}
	return names[n]
}

// ParseName maps a case-insensitive name onto a Name.
func ParseName(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range names {
		if v == s {
			return Name(i), nil
		}
	}
	return Square, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(b []byte) error {
	v, err := ParseName(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Vertex is a polygon corner in canvas coordinates.
type Vertex struct {
	X, Y float64
}

// Polygon is a closed outline; the last vertex connects back to the first.
type Polygon []Vertex

// Provider produces the outline of a shape for a given canvas size.
type Provider interface {
	// Name reports which shape this provider draws.
	Name() Name
	// Path returns the outline scaled to a width×height canvas.
	Path(width, height int) Polygon
}
