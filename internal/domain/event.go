package domain

import "time"

type BookingEventType string

const (
	BookingEventRequested BookingEventType = "requested"
	BookingEventApproved  BookingEventType = "approved"
	BookingEventRejected  BookingEventType = "rejected"
	BookingEventCanceled  BookingEventType = "canceled"
)

// BookingEvent is the lifecycle record published to the message broker
// after every successful booking write.
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  string           `json:"booking_id"`
	ItemID     string           `json:"item_id"`
	BookerID   string           `json:"booker_id"`
	Start      time.Time        `json:"start"`
	End        time.Time        `json:"end"`
	Status     BookingStatus    `json:"status"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		ItemID:     b.ItemID,
		BookerID:   b.BookerID,
		Start:      b.Start,
		End:        b.End,
		Status:     b.Status,
		OccurredAt: at,
	}
}
