package shapes

import (
	"math"
	"strconv"
	"strings"
)

// tolerance is the absolute difference below which two lengths are equal.
const tolerance = 0.00001

// RoundHundredths rounds x to two decimal places by scaling by 100,
// rounding half up to an integer and scaling back. 1.005 becomes 1.0
// because 1.005*100 is slightly below 100.5 in binary floating point.
func RoundHundredths(x float64) float64 {
	return float64(roundHalfUp(x*100)) / 100
}

// roundHalfUp returns floor(x+0.5) as an int64, saturating at the int64
// range and mapping NaN to 0. The fractional part is compared directly so
// that 0.49999999999999994 rounds to 0.
func roundHalfUp(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= 0x1p63:
		return math.MaxInt64
	case x < -0x1p63:
		return math.MinInt64
	}

	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int64(f)
}

// FormatDecimal renders d the way a 64-bit double is conventionally printed:
// the shortest digits that round-trip, always with a fractional part
// ("1.0", "2.5"), and scientific notation ("1.0E7", "1.0E-4") outside
// [1e-3, 1e7).
func FormatDecimal(d float64) string {
	switch {
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "Infinity"
	case math.IsInf(d, -1):
		return "-Infinity"
	case d == 0:
		if math.Signbit(d) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(d); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(d, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(d, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}

// formatLength is the rounded form used in every String method.
func formatLength(x float64) string {
	return FormatDecimal(RoundHundredths(x))
}
