package grid

import "strings"

// String renders the grid without a path overlay.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render returns a plain-text dump of the grid with path cells marked '*'.
// Orthogonal grids draw their walls; radial grids draw one character per
// lattice cell ('o' for ring cells, '*' on the path).
func (g *Grid) Render(path Path) string {
	on := make(map[Point]struct{}, len(path))
	for _, p := range path {
		on[p] = struct{}{}
	}
	if g.Style == StyleSpiral {
		return g.renderRadial(on)
	}
	return g.renderOrthogonal(on)
}

func (g *Grid) renderRadial(on map[Point]struct{}) string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			_, hit := on[Point{x, y}]
			switch {
			case hit:
				sb.WriteByte('*')
			case c.InShape:
				sb.WriteByte('o')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) renderOrthogonal(on map[Point]struct{}) string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		// wall row above y
		for x := 0; x < g.Width; x++ {
			sb.WriteByte('+')
			if g.wallAbove(x, y) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")

		// cell row
		for x := 0; x < g.Width; x++ {
			if g.wallLeftOf(x, y) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			c := g.At(x, y)
			_, hit := on[Point{x, y}]
			switch {
			case hit:
				sb.WriteString(" * ")
			case !c.InShape:
				sb.WriteString("###")
			default:
				sb.WriteString("   ")
			}
		}
		if g.At(g.Width-1, y).Walls.Right {
			sb.WriteString("|\n")
		} else {
			sb.WriteString(" \n")
		}
	}
	for x := 0; x < g.Width; x++ {
		sb.WriteByte('+')
		if g.At(x, g.Height-1).Walls.Bottom {
			sb.WriteString("---")
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteString("+\n")
	return sb.String()
}

func (g *Grid) wallAbove(x, y int) bool {
	c := g.At(x, y)
	if y == 0 {
		return c.Walls.Top
	}
	return c.Walls.Top || g.At(x, y-1).Walls.Bottom
}

func (g *Grid) wallLeftOf(x, y int) bool {
	c := g.At(x, y)
	if x == 0 {
		return c.Walls.Left
	}
	return c.Walls.Left || g.At(x-1, y).Walls.Right
}
