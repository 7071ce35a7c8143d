package simpleblog

import (
	"errors"
	"fmt"
	"strings"
)

// Error types
var (
	// ErrPostNotFound indicates no post exists for the given identifier
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidID indicates the supplied identifier is not a well-formed
	// object ID for the store
	ErrInvalidID = errors.New("invalid post id")
)

// Validation failure reasons carried on ValidationError.
const (
	ReasonRequired = "required"
	ReasonTooLong  = "too_long"
)

// ValidationError describes a single field-level constraint violation.
type ValidationError struct {
	Field  string
	Reason string
	Limit  int // character limit, set when Reason is ReasonTooLong
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonRequired:
		return fmt.Sprintf("%s is required", e.Field)
	case ReasonTooLong:
		return fmt.Sprintf("%s cannot be more than %d characters", e.Field, e.Limit)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// ValidationErrors is the full list of violations for a payload.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// StoreError represents a failure of the underlying document store. Driver
// errors never leak past the service boundary except wrapped in this type.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
