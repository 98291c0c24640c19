package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingState is the query-side bucket used when listing bookings. It is
// never persisted and is distinct from BookingStatus: WAITING/REJECTED
// filter by status equality, CURRENT/PAST/FUTURE filter APPROVED bookings
// by a time predicate.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState matches case-insensitively and trims whitespace. An
// empty value defaults to ALL.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return StateAll, nil
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// Matches reports whether the booking falls into the bucket relative to now.
// The repository's bucketed queries implement exactly this predicate in SQL.
func (s BookingState) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateWaiting:
		return b.Status == BookingStatusWaiting
	case StateRejected:
		return b.Status == BookingStatusRejected
	case StateCurrent:
		return b.Status == BookingStatusApproved && !b.Start.After(now) && b.End.After(now)
	case StatePast:
		return b.Status == BookingStatusApproved && !b.End.After(now)
	case StateFuture:
		return b.Status == BookingStatusApproved && b.Start.After(now)
	default:
		return false
	}
}
