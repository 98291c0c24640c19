package domain

import "time"

type Item struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   *string   `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemDetails is the read-side view of an item: the item itself plus the
// most recently concluded and soonest upcoming APPROVED bookings relative
// to "now", and the comments left by past bookers. Last/next are filled
// only for the item's owner.
type ItemDetails struct {
	Item        Item            `json:"item"`
	LastBooking *BookingSummary `json:"last_booking,omitempty"`
	NextBooking *BookingSummary `json:"next_booking,omitempty"`
	Comments    []Comment       `json:"comments"`
}

type CreateItemInput struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *string
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}
