package trail

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/trail/pkg/trail/pattern"
)

// Sentinel errors for common conditions.
var (
	// ErrNoWindow indicates a Navigator was created without a window to
	// present in.
	ErrNoWindow = errors.New("no window")

	// ErrNoRoute indicates an opened URL matched no mapped pattern.
	ErrNoRoute = pattern.ErrNoRoute
)

// InfrastructureError represents a failure of trail itself rather than of a
// navigation request: a route file that cannot be read, a pattern that does
// not compile, a missing window.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load", "map")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("trail: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("trail: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsNoRoute checks if an error reports an unmatched URL.
func IsNoRoute(err error) bool {
	return errors.Is(err, ErrNoRoute)
}
