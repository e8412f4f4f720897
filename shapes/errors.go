package shapes

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error returned from a constructor
// or setter in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports the constraint a constructor or setter
// argument violated.
type InvalidArgumentError struct {
	Field   string // Field the argument was meant for, e.g. "radius"
	Message string // Constraint that was violated
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(field, message string) error {
	return &InvalidArgumentError{Field: field, Message: message}
}

// positive is false for NaN as well as for values <= 0.
func positive(x float64) bool {
	return x > 0
}
