// Package values contains domain value objects that encapsulate
// primitive types with validation.
package values

import (
	"fmt"
	"strings"
)

// Kind identifies which shape type a request describes.
type Kind struct {
	value kindValue
}

type kindValue int

const (
	kindUnknown kindValue = iota
	kindCircle
	kindRectangle
	kindRegularPolygon
)

// Predefined kinds
var (
	KindUnknown        = Kind{kindUnknown}
	KindCircle         = Kind{kindCircle}
	KindRectangle      = Kind{kindRectangle}
	KindRegularPolygon = Kind{kindRegularPolygon}
)

// NewKind parses a shape kind. Matching ignores case and surrounding
// whitespace; "square" is an alias for rectangle and "polygon" for
// regular_polygon.
func NewKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "circle":
		return KindCircle, nil
	case "rectangle", "square":
		return KindRectangle, nil
	case "regular_polygon", "regular-polygon", "polygon":
		return KindRegularPolygon, nil
	default:
		return Kind{}, fmt.Errorf("invalid shape kind: %q (expected one of %s)", s, strings.Join(kindNames(), ", "))
	}
}

// MustNewKind creates a Kind or panics
func MustNewKind(s string) Kind {
	k, err := NewKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindRectangle, KindRegularPolygon}
}

func kindNames() []string {
	kinds := Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

// String returns the canonical name
func (k Kind) String() string {
	switch k.value {
	case kindCircle:
		return "circle"
	case kindRectangle:
		return "rectangle"
	case kindRegularPolygon:
		return "regular_polygon"
	default:
		return ""
	}
}

// IsZero returns true if this is the zero value
func (k Kind) IsZero() bool {
	return k.value == kindUnknown
}

// Equals checks if two kinds are equal
func (k Kind) Equals(other Kind) bool {
	return k.value == other.value
}
