package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both missing entities and entities the caller is
	// not allowed to see; the two cases are indistinguishable externally.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the acting user could not be validated as a
	// known principal. Only the booking-creation entry point distinguishes
	// it from ErrNotFound.
	ErrUnauthorized = errors.New("user is not authorized")

	ErrValidation   = errors.New("validation error")
	ErrUnknownState = errors.New("unknown booking state")
)

// Business-rule violations. All of them unwrap to ErrValidation so the
// handler maps them with a single errors.Is check.
var (
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrValidation)
	ErrTimeConflict      = fmt.Errorf("%w: item is already booked for the requested period", ErrValidation)
	ErrItemUnavailable   = fmt.Errorf("%w: item is currently unavailable for booking", ErrValidation)
	ErrCommentNotAllowed = fmt.Errorf("%w: user has no completed booking for the item", ErrValidation)

	ErrEmailTaken = errors.New("email is already taken")
)

type NotFoundReason string

const (
	ReasonMissingEntity NotFoundReason = "missing_entity"
	ReasonNotVisible    NotFoundReason = "not_visible"
)

// NotFoundError tags a not-found failure with why it happened. The reason
// never leaves the service (both collapse to the same 404) but keeps logs
// debuggable when "not found" actually means "not yours to see".
type NotFoundError struct {
	Reason NotFoundReason
	Msg    string
}

func (e *NotFoundError) Error() string { return e.Msg }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NewMissing(msg string) *NotFoundError {
	return &NotFoundError{Reason: ReasonMissingEntity, Msg: msg}
}

func NewNotVisible(msg string) *NotFoundError {
	return &NotFoundError{Reason: ReasonNotVisible, Msg: msg}
}
