package types

import (
	"errors"
	"fmt"
	"strings"
)

// Standard errors shared across the storage adapter, the store service, and
// the query cache.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrNotFound     = errors.New("recipe not found")
	ErrInvalidID    = errors.New("invalid recipe id")
	ErrImportFormat = errors.New("unrecognized import format")
)

// StoreError wraps an underlying storage-layer failure. Structural marks a
// mismatch between the expected schema and the schema actually on disk;
// structural failures trigger the adapter's recovery path and are never
// retried by the query cache.
type StoreError struct {
	Op         string
	Structural bool
	Err        error
}

func (e *StoreError) Error() string {
	if e.Structural {
		return fmt.Sprintf("store %s: structural: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err as a non-structural store failure.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// NewStructuralError wraps err as a structural store failure.
func NewStructuralError(op string, err error) *StoreError {
	return &StoreError{Op: op, Structural: true, Err: err}
}

// IsStructural reports whether err wraps a structural store failure.
func IsStructural(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Structural
}

// FieldError is a single form-level validation finding.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the set of findings for an invalid form payload.
// Validation failures are reported at the form boundary and never reach
// the store.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidation returns the validation findings wrapped in err, if any.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
