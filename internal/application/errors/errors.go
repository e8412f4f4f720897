// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError indicates a request could not be turned into a shape.
type ValidationError struct {
	Cause   error    // Underlying error, e.g. a shapes.InvalidArgumentError
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s (%d issues)", msg, len(e.Details))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// WrapValidationError creates a validation error caused by err.
func WrapValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Cause:   err,
	}
}

// ExpectationError indicates one or more expect expressions did not hold.
type ExpectationError struct {
	Subject string   // Description of the measured shape
	Failed  []string // Expressions that evaluated to false or errored
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%d expectation(s) failed for %s: %s", len(e.Failed), e.Subject, strings.Join(e.Failed, "; "))
}

// NewExpectationError creates a new expectation error.
func NewExpectationError(subject string, failed []string) *ExpectationError {
	return &ExpectationError{
		Subject: subject,
		Failed:  failed,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
