package services

import (
	"errors"
	"fmt"
)

// Lookup failures are typed sentinels so every operation, including the
// dispute ones, reports a missing record the same way.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidTransition: the requested move is not on the lifecycle
	// graph. Administrative overrides bypass it via AdminOverrideStatus.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict: the order changed state underneath the caller.
	ErrStatusConflict = errors.New("order status changed concurrently")

	ErrForbidden = errors.New("forbidden")
)

// ValidationError marks malformed input; the order (or review) is not
// created.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
