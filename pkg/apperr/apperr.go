// Package apperr defines the error taxonomy shared by services and
// controllers. Validation and transition failures are detected before any
// database write or outbound call and map to 4xx responses; everything else
// surfaces as a 500 with the message passed through.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrVendorMismatch guards the single-vendor cart invariant.
	ErrVendorMismatch = errors.New("cart holds items from another vendor")
)

// ValidationError is a local, pre-persistence check failure. Kind
// distinguishes the subkinds callers branch on.
type ValidationError struct {
	Kind string
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

// Sentinel validation errors; compare with errors.Is.
var (
	ErrMissingSchedule = &ValidationError{Kind: "missing_schedule", Msg: "pickup date and time are required"}
	ErrEmptyCart       = &ValidationError{Kind: "empty_cart", Msg: "cart is empty"}
	ErrPastSchedule    = &ValidationError{Kind: "past_schedule", Msg: "pickup time must not be in the past"}
	ErrItemUnavailable = &ValidationError{Kind: "unavailable_item", Msg: "menu item is not available"}
)

// Validation builds a generic field-level validation error.
func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Kind: "invalid", Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError rejects an out-of-table status change. It is raised
// before anything is written; an invalid transition never reaches storage.
type InvalidTransitionError struct {
	From string
	To   string
	Role string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s as %s", e.From, e.To, e.Role)
}

// IsValidation reports whether err is any validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidTransition reports whether err is a rejected status change.
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}
