// Package shape provides the boundary shapes a maze can be cut to.
//
// What:
//
//   - Provider returns a closed Polygon scaled to a width×height canvas.
//   - Polygon.Inside is an even-odd ray-casting membership test.
//   - Five built-in providers: Square, Circle, Heart, Star, Hexagon.
//
// Membership is a pure function of the polygon and the point, so repeated
// calls with the same arguments always agree.
//
// Complexity:
//
//   - Path:   O(V) where V is the vertex count of the shape.
//   - Inside: O(V).
//
// Errors:
//
//   - ErrUnknownShape: ParseName or ByName got a name outside the table.
package shape
