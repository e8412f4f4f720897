// Package dto contains data transfer objects for application layer use cases.
package dto

// MeasureRequest describes one shape to build and measure.
type MeasureRequest struct {
	// Kind names the shape type, e.g. "circle" (see values.NewKind)
	Kind string

	// Params holds constructor arguments keyed by name, e.g. "radius".
	// Absent keys fall back to the shape's defaults.
	Params map[string]interface{}

	// Expect lists boolean expressions that must hold for the measurement
	Expect []string
}

// CompareRequest describes two shapes to compare with each other.
type CompareRequest struct {
	Left  MeasureRequest
	Right MeasureRequest
}
