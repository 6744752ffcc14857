package shape

import (
	"fmt"
	"math"
)

const (
	circleSegments = 64
	heartStep      = 0.1
	starSpikes     = 5
	starInnerRatio = 0.4
	hexagonSides   = 6
)

type square struct{}
type circle struct{}
type heart struct{}
type star struct{}
type hexagon struct{}

// NewSquare returns the full-canvas provider.
func NewSquare() Provider { return square{} }

// NewCircle returns the inscribed-circle provider.
func NewCircle() Provider { return circle{} }

// NewHeart returns the heart-curve provider.
func NewHeart() Provider { return heart{} }

// NewStar returns the five-pointed star provider.
func NewStar() Provider { return star{} }

// NewHexagon returns the regular hexagon provider.
func NewHexagon() Provider { return hexagon{} }

// ByName returns the built-in provider for n.
func ByName(n Name) (Provider, error) {
	switch n {
	case Square:
		return square{}, nil
	case Circle:
		return circle{}, nil
	case Heart:
		return heart{}, nil
	case Star:
		return star{}, nil
	case Hexagon:
		return hexagon{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(n))
}

func (square) Name() Name { return Square }

func (square) Path(width, height int) Polygon {
	w, h := float64(width), float64(height)
	return Polygon{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

func (circle) Name() Name { return Circle }

func (circle) Path(width, height int) Polygon {
	cx, cy := float64(width)/2, float64(height)/2
	r := math.Min(float64(width), float64(height)) / 2
	pts := make(Polygon, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		pts = append(pts, Vertex{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

func (heart) Name() Name { return Heart }

// Path samples x=16sin³t, y=13cos t−5cos 2t−2cos 3t−cos 4t, scaled to fit.
func (heart) Path(width, height int) Polygon {
	scale := math.Min(float64(width), float64(height))
	cx, cy := float64(width)/2, float64(height)/2
	var pts Polygon
	for a := 0.0; a <= 2*math.Pi; a += heartStep {
		x := 16 * math.Pow(math.Sin(a), 3)
		y := 13*math.Cos(a) - 5*math.Cos(2*a) - 2*math.Cos(3*a) - math.Cos(4*a)
		pts = append(pts, Vertex{cx + x*scale/32, cy - y*scale/32})
	}
	return pts
}

func (star) Name() Name { return Star }

func (star) Path(width, height int) Polygon {
	cx, cy := float64(width)/2, float64(height)/2
	outer := math.Min(float64(width), float64(height)) / 2
	inner := outer * starInnerRatio
	pts := make(Polygon, 0, starSpikes*2)
	for i := 0; i < starSpikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)/float64(starSpikes*2)*2*math.Pi - math.Pi/2
		pts = append(pts, Vertex{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

func (hexagon) Name() Name { return Hexagon }

func (hexagon) Path(width, height int) Polygon {
	cx, cy := float64(width)/2, float64(height)/2
	r := math.Min(float64(width), float64(height)) / 2
	pts := make(Polygon, 0, hexagonSides+1)
	for i := 0; i <= hexagonSides; i++ {
		a := float64(i) / hexagonSides * 2 * math.Pi
		pts = append(pts, Vertex{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}
