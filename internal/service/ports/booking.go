package ports

import (
	"context"
	"time"

	"github.com/akulagin/itemshare/internal/domain"
)

type BookingStore interface {
	// Create persists a new booking after re-checking the approved-overlap
	// predicate under a per-item lock, so two concurrent requests for the
	// same window cannot both succeed.
	Create(ctx context.Context, b *domain.Booking) error

	ExistsApprovedOverlap(ctx context.Context, itemID string, start, end time.Time) (bool, error)

	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetByIDForOwner(ctx context.Context, bookingID, ownerID string) (*domain.Booking, error)
	GetByIDForBookerOrOwner(ctx context.Context, bookingID, userID string) (*domain.Booking, error)

	// UpdateStatus flips the booking from `from` to `to` in a single
	// conditional write; a concurrent transition loses and gets
	// ErrInvalidTransition.
	UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus) (*domain.Booking, error)

	ListByBooker(ctx context.Context, bookerID string, state domain.BookingState, now time.Time) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string, state domain.BookingState, now time.Time) ([]*domain.Booking, error)

	ListByItemForOwner(ctx context.Context, itemID, ownerID string) ([]*domain.Booking, error)
	ListApprovedByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)

	HasCompletedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error)

	CancelStaleWaiting(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
