package shapes

import "math"

// kind tags the closed set of shape types Equal dispatches on.
type kind int

const (
	kindNone kind = iota
	kindCircle
	kindRectangle
	kindRegularPolygon
)

// kindOf returns kindNone for nil pointers and for anything that is not a
// shape pointer.
func kindOf(v any) kind {
	switch s := v.(type) {
	case *Circle:
		if s != nil {
			return kindCircle
		}
	case *Rectangle:
		if s != nil {
			return kindRectangle
		}
	case *RegularPolygon:
		if s != nil {
			return kindRegularPolygon
		}
	}
	return kindNone
}

type pair struct {
	receiver, other kind
}

// comparisons lists every pair that can compare equal. Any pair missing here
// is never equal. The entries for rectangle/polygon are intentionally not
// mirror images of each other.
var comparisons = map[pair]func(a, b any) bool{
	{kindCircle, kindCircle}: func(a, b any) bool {
		return closeEnough(a.(*Circle).radius, b.(*Circle).radius)
	},
	{kindRectangle, kindRectangle}: func(a, b any) bool {
		r, o := a.(*Rectangle), b.(*Rectangle)
		return closeEnough(r.length, o.length) && closeEnough(r.width, o.width)
	},
	{kindRectangle, kindRegularPolygon}: func(a, b any) bool {
		r, p := a.(*Rectangle), b.(*RegularPolygon)
		return r.IsSquare() && p.numSides == 4 && p.sideLength == r.length
	},
	{kindRegularPolygon, kindRegularPolygon}: func(a, b any) bool {
		p, o := a.(*RegularPolygon), b.(*RegularPolygon)
		return p.numSides == o.numSides && closeEnough(p.sideLength, o.sideLength)
	},
	{kindRegularPolygon, kindRectangle}: func(a, b any) bool {
		p, r := a.(*RegularPolygon), b.(*Rectangle)
		return p.numSides == 4 &&
			closeEnough(r.width, p.sideLength) &&
			closeEnough(r.length, p.sideLength)
	},
}

// Equal reports whether a considers b equal, using the rules of a's Equals
// method. It is not symmetric for a square Rectangle and a four-sided
// RegularPolygon: a Rectangle receiver needs an exact side match, a
// RegularPolygon receiver only a match within 1e-5.
//
// Nil values and values that are not *Circle, *Rectangle or *RegularPolygon
// are never equal to anything.
func Equal(a, b any) bool {
	cmp, ok := comparisons[pair{kindOf(a), kindOf(b)}]
	return ok && cmp(a, b)
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}
