package booking

import "fmt"

// ValidationError reports malformed or missing input, e.g. a past date or an
// empty id list. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// AuthorizationError reports that the actor lacks permission for the
// requested action on this booking.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization: %s", e.Message)
}

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Message: msg}
}

// NotFoundError reports an unknown booking id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// TransitionError reports that the requested action is invalid given the
// booking's current status.
type TransitionError struct {
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition: %s", e.Message)
}

func NewTransitionError(msg string) error {
	return &TransitionError{Message: msg}
}

// NetworkError wraps a transient store failure on a direct user action. It is
// surfaced to the caller and never retried automatically here.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
