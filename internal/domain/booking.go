package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
	BookingStatusCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID        string        `json:"id"`
	ItemID    string        `json:"item_id"`
	BookerID  string        `json:"booker_id"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookingSummary is the short view shown on item cards. It deliberately
// exposes nothing about the booker except the ID.
type BookingSummary struct {
	ID       string    `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID string    `json:"booker_id"`
}

type CreateBookingInput struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

func (in CreateBookingInput) Validate() error {
	if !in.End.After(in.Start) {
		return fmt.Errorf("%w: booking end must be after start", ErrValidation)
	}
	return nil
}

// ApplyDecision moves the booking out of WAITING. Every other status is
// terminal, so a second decision on the same booking fails.
func (b *Booking) ApplyDecision(approved bool) error {
	if b.Status != BookingStatusWaiting {
		return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, b.Status)
	}
	if approved {
		b.Status = BookingStatusApproved
	} else {
		b.Status = BookingStatusRejected
	}
	return nil
}

// Overlaps reports whether the half-open interval [start, end) shares at
// least one instant with the booking's interval: b.End > start && b.Start < end.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.End.After(start) && b.Start.Before(end)
}

// Blocks reports whether the booking occupies the interval for conflict
// purposes. Only APPROVED bookings count toward occupancy; WAITING,
// REJECTED and CANCELED never block a new request.
func (b *Booking) Blocks(start, end time.Time) bool {
	return b.Status == BookingStatusApproved && b.Overlaps(start, end)
}

func (b *Booking) Summary() *BookingSummary {
	return &BookingSummary{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		BookerID: b.BookerID,
	}
}
