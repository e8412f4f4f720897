package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/shapes/internal/application/dto"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatMeasurement writes a measurement report as YAML.
func (f *YAMLFormatter) FormatMeasurement(m *dto.MeasurementResponse) error {
	return f.encode(m)
}

// FormatComparison writes a comparison report as YAML.
func (f *YAMLFormatter) FormatComparison(c *dto.ComparisonResponse) error {
	return f.encode(c)
}

func (f *YAMLFormatter) encode(v interface{}) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
