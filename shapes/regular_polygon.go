package shapes

import (
	"math"
	"strconv"
)

// polygonNames holds the names of regular polygons with 5 to 20 sides.
var polygonNames = [...]string{
	"pentagon", "hexagon", "heptagon", "octagon", "nonagon", "decagon",
	"hendecagon", "dodecagon", "triskaidecagon", "tetrakaidecagon",
	"pentadecagon", "hexadecagon", "heptadecagon", "octadecagon",
	"enneadecagon", "icosagon",
}

const (
	minSides   = 3
	firstNamed = 5
)

// RegularPolygon is a polygon whose sides all share one positive length.
// The zero value is not a valid RegularPolygon; use DefaultRegularPolygon or
// one of the constructors.
type RegularPolygon struct {
	numSides   int
	sideLength float64
}

// DefaultRegularPolygon returns an equilateral triangle with side length 1.0.
func DefaultRegularPolygon() *RegularPolygon {
	return &RegularPolygon{numSides: minSides, sideLength: 1.0}
}

// RegularPolygonFromSideCount creates a polygon with numSides sides of
// length 1.0. numSides must be at least 3.
//
// See RegularPolygonFromSideLength for the constructor that fixes the side
// length instead; the two take different argument types, so check which one
// a call site means.
func RegularPolygonFromSideCount(numSides int) (*RegularPolygon, error) {
	p := DefaultRegularPolygon()
	if err := p.SetNumSides(numSides); err != nil {
		return nil, err
	}
	return p, nil
}

// RegularPolygonFromSideLength creates an equilateral triangle with the given
// positive side length.
func RegularPolygonFromSideLength(sideLength float64) (*RegularPolygon, error) {
	p := DefaultRegularPolygon()
	if err := p.SetSideLength(sideLength); err != nil {
		return nil, err
	}
	return p, nil
}

// NewRegularPolygon creates a polygon with numSides sides (at least 3) of the
// given positive length.
func NewRegularPolygon(numSides int, sideLength float64) (*RegularPolygon, error) {
	p := DefaultRegularPolygon()
	if err := p.SetNumSides(numSides); err != nil {
		return nil, err
	}
	if err := p.SetSideLength(sideLength); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNewRegularPolygon creates a RegularPolygon or panics
func MustNewRegularPolygon(numSides int, sideLength float64) *RegularPolygon {
	p, err := NewRegularPolygon(numSides, sideLength)
	if err != nil {
		panic(err)
	}
	return p
}

// SetNumSides changes the number of sides. Fewer than 3 sides is rejected and
// the polygon is left unchanged.
func (p *RegularPolygon) SetNumSides(numSides int) error {
	if numSides <= minSides-1 {
		return invalidArgument("number of sides", "the number of sides in a regular polygon must be 3 or greater")
	}
	p.numSides = numSides
	return nil
}

// SetSideLength changes the side length. A non-positive length is rejected
// and the polygon is left unchanged.
func (p *RegularPolygon) SetSideLength(sideLength float64) error {
	if !positive(sideLength) {
		return invalidArgument("side length", "the length of a side must be positive")
	}
	p.sideLength = sideLength
	return nil
}

// NumSides returns the number of sides
func (p *RegularPolygon) NumSides() int {
	return p.numSides
}

// SideLength returns the length of each side
func (p *RegularPolygon) SideLength() float64 {
	return p.sideLength
}

// Area returns s²·n / (4·tan(π/n)).
func (p *RegularPolygon) Area() float64 {
	s := p.sideLength
	n := float64(p.numSides)
	return (s * s * n) / (4 * math.Tan(math.Pi/n))
}

// Perimeter returns the side length times the number of sides.
func (p *RegularPolygon) Perimeter() float64 {
	return p.sideLength * float64(p.numSides)
}

// AddSide adds one side of the same length.
func (p *RegularPolygon) AddSide() {
	p.numSides++
}

// AddSides adds n sides of the same length. The result is not validated:
// a negative n can leave fewer than 3 sides.
func (p *RegularPolygon) AddSides(n int) {
	p.numSides += n
}

// Name returns the descriptive name used by String, e.g. "square" or
// "regular hexagon". Side counts without a name, including any below 3
// reached through AddSides, use "regular polygon of n sides".
func (p *RegularPolygon) Name() string {
	switch n := p.numSides; {
	case n == 3:
		return "equilateral triangle"
	case n == 4:
		return "square"
	case n >= firstNamed && n < firstNamed+len(polygonNames):
		return "regular " + polygonNames[n-firstNamed]
	default:
		return "regular polygon of " + strconv.Itoa(n) + " sides"
	}
}

// Equals reports whether other describes the same polygon.
//
// A four-sided polygon is equal to a *Rectangle whose length and width are
// both within 1e-5 of its side length. Another *RegularPolygon is equal when
// the side counts match and the side lengths are within 1e-5.
func (p *RegularPolygon) Equals(other any) bool {
	return Equal(p, other)
}

// String returns e.g. "regular pentagon with side length 2.0", the side
// length rounded to the nearest hundredth.
func (p *RegularPolygon) String() string {
	return p.Name() + " with side length " + formatLength(p.sideLength)
}
