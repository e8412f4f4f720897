// Package shapes provides validated geometric value types: Circle,
// Rectangle and RegularPolygon.
//
// Constructors and setters reject non-positive lengths and polygons with
// fewer than three sides with an error matching ErrInvalidArgument. A failed
// setter leaves the shape unchanged, so every observable shape is valid.
//
// Shapes compare with a tolerance of 1e-5. A square Rectangle and a
// four-sided RegularPolygon recognise each other, but not symmetrically:
// Rectangle.Equals requires the polygon's side length to match exactly,
// while RegularPolygon.Equals accepts a rectangle within tolerance.
//
// Shapes are not safe for concurrent mutation. Callers that share a shape
// between goroutines must synchronise access themselves.
package shapes
