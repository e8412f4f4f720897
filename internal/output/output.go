// Package output writes measurement and comparison reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/shapes/internal/application/dto"
)

// Formatter writes reports in one output format.
type Formatter interface {
	FormatMeasurement(m *dto.MeasurementResponse) error
	FormatComparison(c *dto.ComparisonResponse) error
}

// NewFormatter returns the formatter for format (table, json or yaml).
func NewFormatter(format string, w io.Writer, indent bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, indent), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", format)
	}
}
