package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		width     float64
		wantField string
	}{
		{"valid", 3, 4, ""},
		{"zero length", 0, 4, "length"},
		{"negative width", 3, -4, "width"},
		{"both invalid reports length", -1, -1, "length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRectangle(tt.length, tt.width)

			if tt.wantField != "" {
				require.Error(t, err)
				assert.Nil(t, r)
				var argErr *InvalidArgumentError
				require.ErrorAs(t, err, &argErr)
				assert.Equal(t, tt.wantField, argErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.length, r.Length())
			assert.Equal(t, tt.width, r.Width())
		})
	}
}

func TestDefaultRectangle(t *testing.T) {
	r := DefaultRectangle()

	assert.Equal(t, 1.0, r.Length())
	assert.Equal(t, 1.0, r.Width())
	assert.True(t, r.IsSquare())
}

func TestNewSquare(t *testing.T) {
	r, err := NewSquare(2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, r.Length())
	assert.Equal(t, 2.5, r.Width())
	assert.True(t, r.IsSquare())

	_, err = NewSquare(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRectangle_AreaAndPerimeter(t *testing.T) {
	r := MustNewRectangle(3, 4)

	assert.Equal(t, 12.0, r.Area())
	assert.Equal(t, 14.0, r.Perimeter())
}

func TestRectangle_Setters(t *testing.T) {
	r := MustNewRectangle(3, 4)

	require.NoError(t, r.SetLength(6))
	require.NoError(t, r.SetWidth(7))
	assert.Equal(t, 6.0, r.Length())
	assert.Equal(t, 7.0, r.Width())

	assert.ErrorIs(t, r.SetLength(0), ErrInvalidArgument)
	assert.ErrorIs(t, r.SetWidth(-2), ErrInvalidArgument)
	assert.Equal(t, 6.0, r.Length())
	assert.Equal(t, 7.0, r.Width())
}

func TestRectangle_Equals(t *testing.T) {
	var nilRect *Rectangle
	tests := []struct {
		name  string
		rect  *Rectangle
		other any
		want  bool
	}{
		{"same rectangle", MustNewRectangle(3, 4), MustNewRectangle(3, 4), true},
		{"within tolerance", MustNewRectangle(3, 4), MustNewRectangle(3.000001, 3.999999), true},
		{"swapped sides", MustNewRectangle(3, 4), MustNewRectangle(4, 3), false},
		{"square and matching 4-gon", MustNewRectangle(5, 5), MustNewRegularPolygon(4, 5), true},
		{"square and nearly matching 4-gon", MustNewRectangle(5, 5), MustNewRegularPolygon(4, 5.000001), false},
		{"near square and 4-gon", MustNewRectangle(5.0000001, 5), MustNewRegularPolygon(4, 5), false},
		{"square and 5-gon", MustNewRectangle(5, 5), MustNewRegularPolygon(5, 5), false},
		{"circle", MustNewRectangle(1, 1), DefaultCircle(), false},
		{"untyped nil", DefaultRectangle(), nil, false},
		{"typed nil", DefaultRectangle(), nilRect, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rect.Equals(tt.other))
		})
	}
}

func TestRectangle_String(t *testing.T) {
	tests := []struct {
		rect     *Rectangle
		expected string
	}{
		{DefaultRectangle(), "rectangle with length 1.0, width 1.0"},
		{MustNewRectangle(3, 4), "rectangle with length 3.0, width 4.0"},
		{MustNewRectangle(2.345678, 0.5), "rectangle with length 2.35, width 0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rect.String())
		})
	}
}
