package grid

// Grid is the maze lattice: a dense row-major arena of cells.
// It is mutated by exactly one component at a time and is not safe for
// concurrent use.
type Grid struct {
	Width, Height int
	Style         Style

	cells []Cell
	links [][]int  // optional explicit adjacency, row-major indices
	open  [][]bool // open[i][k] is the passage state of links[i][k]
}

// New allocates a width×height grid with every wall present, no cell in shape,
// every cell marked visited, and Ring = Segment = -1.
// Topologies flip InShape/Visited for the cells that take part in the maze.
//
// Complexity: O(W·H) time and memory.
func New(width, height int, style Style) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Style:  style,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.Index(x, y)] = Cell{
				X:       x,
				Y:       y,
				Visited: true,
				Walls:   AllWalls(),
				Ring:    -1,
				Segment: -1,
			}
		}
	}
	return g, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Index maps (x,y) to its row-major index.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// At returns the cell at (x,y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// CellAt returns the cell at p, or nil when out of bounds.
func (g *Grid) CellAt(p Point) *Cell {
	return g.At(p.X, p.Y)
}

// InShape reports whether p is in bounds and part of the maze.
func (g *Grid) InShape(p Point) bool {
	c := g.CellAt(p)
	return c != nil && c.InShape
}

// Len returns the number of cells in the arena.
func (g *Grid) Len() int {
	return len(g.cells)
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// InShapeCount returns how many cells take part in the maze.
func (g *Grid) InShapeCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].InShape {
			n++
		}
	}
	return n
}

// SetLinks stores symmetric adjacency for p. Used by topologies whose
// neighbors are not the four lattice directions.
func (g *Grid) SetLinks(p Point, nbrs []Point) {
	if !g.Contains(p) {
		return
	}
	g.ensureLinks()
	idx := make([]int, 0, len(nbrs))
	for _, q := range nbrs {
		if g.Contains(q) {
			idx = append(idx, g.Index(q.X, q.Y))
		}
	}
	i := g.Index(p.X, p.Y)
	g.links[i] = idx
	g.open[i] = make([]bool, len(idx))
}

func (g *Grid) ensureLinks() {
	if g.links == nil {
		g.links = make([][]int, len(g.cells))
		g.open = make([][]bool, len(g.cells))
	}
}

// Link adds an undirected adjacency between a and b, ignoring duplicates
// and self-links.
func (g *Grid) Link(a, b Point) {
	if a == b || !g.Contains(a) || !g.Contains(b) {
		return
	}
	g.ensureLinks()
	ia, ib := g.Index(a.X, a.Y), g.Index(b.X, b.Y)
	g.addLink(ia, ib)
	g.addLink(ib, ia)
}

func (g *Grid) addLink(from, to int) {
	if g.linkSlot(from, to) >= 0 {
		return
	}
	g.links[from] = append(g.links[from], to)
	g.open[from] = append(g.open[from], false)
}

// linkSlot is the position of to in from's link list, or -1.
func (g *Grid) linkSlot(from, to int) int {
	if g.links == nil {
		return -1
	}
	for k, v := range g.links[from] {
		if v == to {
			return k
		}
	}
	return -1
}

// OpenLink marks the a–b link as a passage in both directions.
// It reports false when a and b are not linked.
func (g *Grid) OpenLink(a, b Point) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	ia, ib := g.Index(a.X, a.Y), g.Index(b.X, b.Y)
	ka, kb := g.linkSlot(ia, ib), g.linkSlot(ib, ia)
	if ka < 0 {
		return false
	}
	g.open[ia][ka] = true
	if kb >= 0 {
		g.open[ib][kb] = true
	}
	return true
}

// LinkOpen reports whether a links to b and the link has been opened.
func (g *Grid) LinkOpen(a, b Point) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	ia := g.Index(a.X, a.Y)
	k := g.linkSlot(ia, g.Index(b.X, b.Y))
	return k >= 0 && g.open[ia][k]
}

// Links returns the stored adjacency of p in insertion order,
// or nil when no links were stored.
func (g *Grid) Links(p Point) []Point {
	if g.links == nil || !g.Contains(p) {
		return nil
	}
	idx := g.links[g.Index(p.X, p.Y)]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Point, len(idx))
	for i, v := range idx {
		out[i] = g.Coordinate(v)
	}
	return out
}

// HasLinks reports whether explicit adjacency is stored.
func (g *Grid) HasLinks() bool {
	return g.links != nil
}

// Clone returns a deep copy of the grid.
//
// Complexity: O(W·H + links).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Style:  g.Style,
		cells:  append([]Cell(nil), g.cells...),
	}
	if g.links != nil {
		c.links = make([][]int, len(g.links))
		c.open = make([][]bool, len(g.open))
		for i, l := range g.links {
			if l != nil {
				c.links[i] = append([]int(nil), l...)
				c.open[i] = append([]bool(nil), g.open[i]...)
			}
		}
	}
	return c
}

// ResetVisited marks every in-shape cell unvisited and every other cell
// visited, leaving walls untouched.
func (g *Grid) ResetVisited() {
	for i := range g.cells {
		g.cells[i].Visited = !g.cells[i].InShape
	}
}
