package ports

import (
	"context"

	"github.com/akulagin/itemshare/internal/domain"
)

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, e domain.BookingEvent) error
}
