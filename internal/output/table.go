package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/reglet-dev/shapes/internal/application/dto"
)

const ruleWidth = 60

// TableFormatter formats reports as human-readable text.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// FormatMeasurement writes a measurement report.
func (f *TableFormatter) FormatMeasurement(m *dto.MeasurementResponse) error {
	fmt.Fprintf(f.writer, "Report: %s\n", m.ID)
	fmt.Fprintln(f.writer, strings.Repeat("─", ruleWidth))
	f.formatShape(m, "")
	fmt.Fprintln(f.writer, strings.Repeat("─", ruleWidth))
	return nil
}

// FormatComparison writes a comparison report.
func (f *TableFormatter) FormatComparison(c *dto.ComparisonResponse) error {
	fmt.Fprintf(f.writer, "Report: %s\n", c.ID)
	fmt.Fprintln(f.writer, strings.Repeat("─", ruleWidth))

	fmt.Fprintln(f.writer, "Left:")
	f.formatShape(&c.Left, "  ")
	fmt.Fprintln(f.writer, "Right:")
	f.formatShape(&c.Right, "  ")

	fmt.Fprintln(f.writer, strings.Repeat("─", ruleWidth))
	fmt.Fprintf(f.writer, "%s left.Equals(right)\n", symbol(c.LeftEqualsRight))
	fmt.Fprintf(f.writer, "%s right.Equals(left)\n", symbol(c.RightEqualsLeft))
	if !c.Symmetric() {
		fmt.Fprintln(f.writer, "⚠ equality is not symmetric for this pair")
	}
	return nil
}

func (f *TableFormatter) formatShape(m *dto.MeasurementResponse, indent string) {
	fmt.Fprintf(f.writer, "%sShape:       %s\n", indent, m.Description)
	fmt.Fprintf(f.writer, "%sKind:        %s\n", indent, m.Kind)
	if m.Sides > 0 {
		fmt.Fprintf(f.writer, "%sSides:       %d\n", indent, m.Sides)
	}
	fmt.Fprintf(f.writer, "%sArea:        %s\n", indent, number(m.Area))
	fmt.Fprintf(f.writer, "%sPerimeter:   %s\n", indent, number(m.Perimeter))

	if len(m.Params) > 0 {
		keys := make([]string, 0, len(m.Params))
		for k := range m.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(f.writer, "%sParameters:\n", indent)
		for _, k := range keys {
			fmt.Fprintf(f.writer, "%s  - %s: %s\n", indent, k, number(m.Params[k]))
		}
	}

	if len(m.Expectations) > 0 {
		fmt.Fprintf(f.writer, "%sExpectations:\n", indent)
		for _, e := range m.Expectations {
			fmt.Fprintf(f.writer, "%s  %s %s\n", indent, symbol(e.Passed), e.Expression)
			if e.Message != "" && !e.Passed {
				fmt.Fprintf(f.writer, "%s      %s\n", indent, e.Message)
			}
		}
	}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func symbol(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
