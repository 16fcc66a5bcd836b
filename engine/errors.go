package engine

import (
	"errors"
	"fmt"
)

// ErrRoundInFlight is returned when a round is submitted while another is
// still being applied. Callers treat it as a silent no-op; the state is
// untouched.
var ErrRoundInFlight = errors.New("engine: round already in flight")

// ValidationError reports malformed or incomplete round input. The state is
// never mutated on a validation failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("engine: invalid round input: %s", e.Reason)
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
