package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all resource services. Handlers translate these
// into HTTP statuses; see handlers.renderError.
var (
	// ErrEmailTaken is returned by Signup when the (case-insensitive) email
	// is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// password mismatch; the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when an operation needs a session (or,
	// with ownership enforcement on, the caller does not own the resource).
	ErrUnauthorized = errors.New("authentication required")
)

// ValidationError reports the first missing required field of a request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
