package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrRoomUnavailable = errors.New("this room is not available")
	ErrDuplicateEmail  = errors.New("a guest with this email already exists")
	ErrDuplicateUnit   = errors.New("a unit with this number already exists for this room")
)

// ValidationError is a caller-fixable input problem; Field names the offending
// input so clients can surface it next to the right form control.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError

	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

// InvalidTransitionError rejects a lifecycle operation from a state that does
// not allow it. The message always names the current status.
type InvalidTransitionError struct {
	Action  string
	Current string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s: status is '%s'", e.Action, e.Current)
}

func IsInvalidTransitionError(err error) *InvalidTransitionError {
	if err == nil {
		return nil
	}

	var transitionError *InvalidTransitionError

	if errors.As(err, &transitionError) {
		return transitionError
	}

	return nil
}
