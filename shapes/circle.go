package shapes

import "math"

// Circle is a circle with a positive radius.
// The zero value is not a valid Circle; use DefaultCircle or NewCircle.
type Circle struct {
	radius float64
}

// DefaultCircle returns a circle with radius 1.0.
func DefaultCircle() *Circle {
	return &Circle{radius: 1.0}
}

// NewCircle creates a circle with the given radius, which must be positive.
func NewCircle(radius float64) (*Circle, error) {
	c := DefaultCircle()
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCircle creates a Circle or panics
func MustNewCircle(radius float64) *Circle {
	c, err := NewCircle(radius)
	if err != nil {
		panic(err)
	}
	return c
}

// SetRadius changes the radius. A non-positive radius is rejected and the
// circle keeps its previous radius.
func (c *Circle) SetRadius(radius float64) error {
	if !positive(radius) {
		return invalidArgument("radius", "the radius of a circle must be positive")
	}
	c.radius = radius
	return nil
}

// Radius returns the radius
func (c *Circle) Radius() float64 {
	return c.radius
}

// Area returns π·r².
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference returns 2·π·r.
func (c *Circle) Circumference() float64 {
	return math.Pi * 2 * c.radius
}

// Equals reports whether other is a *Circle whose radius is within 1e-5 of
// this one.
func (c *Circle) Equals(other any) bool {
	return Equal(c, other)
}

// String returns "circle with radius r", r rounded to the nearest hundredth.
func (c *Circle) String() string {
	return "circle with radius " + formatLength(c.radius)
}
