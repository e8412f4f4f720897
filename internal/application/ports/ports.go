// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"github.com/reglet-dev/shapes/internal/domain/services"
	"github.com/reglet-dev/shapes/internal/domain/values"
)

// ParamsValidator checks request parameters before any shape is built.
type ParamsValidator interface {
	// ValidateParams returns an error if params do not fit kind.
	ValidateParams(kind values.Kind, params map[string]interface{}) error
}

// ExpectationChecker evaluates expect expressions against a measurement.
type ExpectationChecker interface {
	Evaluate(env services.MeasurementEnv, expects []string) ([]services.ExpectationOutcome, bool)
}
