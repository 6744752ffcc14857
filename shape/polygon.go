package shape

// Inside reports whether (x,y) lies inside the polygon under the even-odd rule.
// Points on a left or top edge count as inside, points on a right or bottom
// edge do not, so a square outline of size w×h admits exactly the cells
// 0..w-1 × 0..h-1.
//
// Complexity: O(V).
func (p Polygon) Inside(x, y float64) bool {
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		xi, yi := p[i].X, p[i].Y
		xj, yj := p[j].X, p[j].Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the axis-aligned bounding box of the polygon.
// An empty polygon yields all zeros.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY, maxX, maxY = p[0].X, p[0].Y, p[0].X, p[0].Y
	for _, v := range p[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}
