package ports

import (
	"context"

	"github.com/akulagin/itemshare/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, owner *domain.User, item *domain.Item, b *domain.Booking)
	NotifyBookingApproved(ctx context.Context, booker *domain.User, item *domain.Item, b *domain.Booking)
	NotifyBookingRejected(ctx context.Context, booker *domain.User, item *domain.Item, b *domain.Booking)
	NotifyBookingCanceled(ctx context.Context, booker *domain.User, item *domain.Item, b *domain.Booking)
}
