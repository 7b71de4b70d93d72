package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the simple cases. Flow code wraps these with
// context via fmt.Errorf("...: %w", ...), controllers match with errors.Is.
var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotFound  = errors.New("not found")
)

// ValidationError carries every violated field, not just the first one.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) Has() bool {
	return len(e.Fields) > 0
}

// OrNil lets builders return the error only when something was recorded.
func (e *ValidationError) OrNil() error {
	if e.Has() {
		return e
	}
	return nil
}

// AuthError: credential exchange rejected by the gateway or login failure.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// GatewayError: the payment provider answered with a non-success status
// or reported an error field of its own.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment gateway error (http %d): %s", e.StatusCode, e.Body)
	}
	return "payment gateway error: " + e.Body
}

// NetworkError: a dependency could not be reached at all. Always retryable.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: dependency unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
