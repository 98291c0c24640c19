package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "booking.requested", RoutingKey(domain.BookingEventRequested))
	assert.Equal(t, "booking.approved", RoutingKey(domain.BookingEventApproved))
	assert.Equal(t, "booking.rejected", RoutingKey(domain.BookingEventRejected))
	assert.Equal(t, "booking.canceled", RoutingKey(domain.BookingEventCanceled))
}

func TestPublisher_DisabledIsNoOp(t *testing.T) {
	p, err := NewPublisher("", "itemshare.bookings", newTestLogger(t))
	require.NoError(t, err)

	e := domain.BookingEvent{
		Type:       domain.BookingEventRequested,
		BookingID:  "b1",
		OccurredAt: time.Now(),
	}

	assert.NoError(t, p.PublishBookingEvent(context.Background(), e))
	assert.NoError(t, p.Close())
}
