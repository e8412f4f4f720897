package dto

// MeasurementResponse reports the derived quantities of one shape.
type MeasurementResponse struct {
	ID           string              `json:"id" yaml:"id"`
	Kind         string              `json:"kind" yaml:"kind"`
	Description  string              `json:"description" yaml:"description"`
	Area         float64             `json:"area" yaml:"area"`
	Perimeter    float64             `json:"perimeter" yaml:"perimeter"` // circumference for circles
	Sides        int                 `json:"sides,omitempty" yaml:"sides,omitempty"`
	Params       map[string]float64  `json:"params" yaml:"params"`
	Expectations []ExpectationResult `json:"expectations,omitempty" yaml:"expectations,omitempty"`
}

// ExpectationResult is the outcome of one expect expression.
type ExpectationResult struct {
	Expression string `json:"expression" yaml:"expression"`
	Passed     bool   `json:"passed" yaml:"passed"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ComparisonResponse reports equality between two shapes in both directions.
type ComparisonResponse struct {
	ID              string              `json:"id" yaml:"id"`
	Left            MeasurementResponse `json:"left" yaml:"left"`
	Right           MeasurementResponse `json:"right" yaml:"right"`
	LeftEqualsRight bool                `json:"left_equals_right" yaml:"left_equals_right"`
	RightEqualsLeft bool                `json:"right_equals_left" yaml:"right_equals_left"`
}

// Symmetric reports whether both directions agree.
func (c *ComparisonResponse) Symmetric() bool {
	return c.LeftEqualsRight == c.RightEqualsLeft
}
