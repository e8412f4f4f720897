package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/shapes/internal/application/dto"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatMeasurement writes a measurement report as JSON.
func (f *JSONFormatter) FormatMeasurement(m *dto.MeasurementResponse) error {
	return f.write(m)
}

// FormatComparison writes a comparison report as JSON.
func (f *JSONFormatter) FormatComparison(c *dto.ComparisonResponse) error {
	return f.write(c)
}

func (f *JSONFormatter) write(v interface{}) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	if _, err := f.writer.Write(data); err != nil {
		return err
	}

	// Trailing newline for terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
