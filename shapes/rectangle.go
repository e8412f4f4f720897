package shapes

// Rectangle is a rectangle with positive length and width.
// The zero value is not a valid Rectangle; use DefaultRectangle or one of
// the constructors.
type Rectangle struct {
	length float64
	width  float64
}

// DefaultRectangle returns a 1.0 by 1.0 rectangle.
func DefaultRectangle() *Rectangle {
	return &Rectangle{length: 1.0, width: 1.0}
}

// NewSquare creates a rectangle whose length and width are both side.
func NewSquare(side float64) (*Rectangle, error) {
	return NewRectangle(side, side)
}

// NewRectangle creates a rectangle with the given length and width, both of
// which must be positive.
func NewRectangle(length, width float64) (*Rectangle, error) {
	r := DefaultRectangle()
	if err := r.SetLength(length); err != nil {
		return nil, err
	}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRectangle creates a Rectangle or panics
func MustNewRectangle(length, width float64) *Rectangle {
	r, err := NewRectangle(length, width)
	if err != nil {
		panic(err)
	}
	return r
}

// SetLength changes the length. A non-positive length is rejected and the
// rectangle is left unchanged.
func (r *Rectangle) SetLength(length float64) error {
	if !positive(length) {
		return invalidArgument("length", "the length of a rectangle must be positive")
	}
	r.length = length
	return nil
}

// SetWidth changes the width. A non-positive width is rejected and the
// rectangle is left unchanged.
func (r *Rectangle) SetWidth(width float64) error {
	if !positive(width) {
		return invalidArgument("width", "the width of a rectangle must be positive")
	}
	r.width = width
	return nil
}

// Length returns the length
func (r *Rectangle) Length() float64 {
	return r.length
}

// Width returns the width
func (r *Rectangle) Width() float64 {
	return r.width
}

// IsSquare reports whether length and width are exactly equal.
func (r *Rectangle) IsSquare() bool {
	return r.length == r.width
}

// Area returns length × width.
func (r *Rectangle) Area() float64 {
	return r.length * r.width
}

// Perimeter returns 2 × (length + width).
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.length + r.width)
}

// Equals reports whether other describes the same rectangle.
//
// A square is equal to a four-sided *RegularPolygon only when the polygon's
// side length equals the square's side exactly. Another *Rectangle is equal
// when both length and width are within 1e-5.
func (r *Rectangle) Equals(other any) bool {
	return Equal(r, other)
}

// String returns "rectangle with length l, width w", both rounded to the
// nearest hundredth.
func (r *Rectangle) String() string {
	return "rectangle with length " + formatLength(r.length) + ", width " + formatLength(r.width)
}
