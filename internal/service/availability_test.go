package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulagin/itemshare/internal/domain"
)

func approvedAt(id string, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		ItemID: "i1",
		Start:  start,
		End:    end,
		Status: domain.BookingStatusApproved,
	}
}

func TestLastApproved_PicksGreatestConcludedEnd(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		approvedAt("old", now.Add(-72*time.Hour), now.Add(-48*time.Hour)),
		approvedAt("recent", now.Add(-24*time.Hour), now.Add(-time.Hour)),
		approvedAt("upcoming", now.Add(time.Hour), now.Add(2*time.Hour)),
	}

	last := lastApproved(bookings, now)
	require.NotNil(t, last)
	assert.Equal(t, "recent", last.ID)
}

func TestNextApproved_PicksSmallestUpcomingStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		approvedAt("past", now.Add(-24*time.Hour), now.Add(-time.Hour)),
		approvedAt("soon", now.Add(time.Hour), now.Add(2*time.Hour)),
		approvedAt("later", now.Add(48*time.Hour), now.Add(49*time.Hour)),
	}

	next := nextApproved(bookings, now)
	require.NotNil(t, next)
	assert.Equal(t, "soon", next.ID)
}

func TestAvailability_IgnoresNonApproved(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{ID: "w", Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour), Status: domain.BookingStatusWaiting},
		{ID: "r", Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Status: domain.BookingStatusRejected},
		{ID: "c", Start: now.Add(3 * time.Hour), End: now.Add(4 * time.Hour), Status: domain.BookingStatusCanceled},
	}

	assert.Nil(t, lastApproved(bookings, now))
	assert.Nil(t, nextApproved(bookings, now))
}

func TestAvailability_InFlightBookingIsNeitherLastNorNext(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Started but not yet concluded.
	bookings := []*domain.Booking{
		approvedAt("running", now.Add(-time.Hour), now.Add(time.Hour)),
	}

	assert.Nil(t, lastApproved(bookings, now))
	assert.Nil(t, nextApproved(bookings, now))
}

func TestAvailability_EmptyInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, lastApproved(nil, now))
	assert.Nil(t, nextApproved(nil, now))
}

func TestGroupByItem(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: "b1", ItemID: "i1"},
		{ID: "b2", ItemID: "i2"},
		{ID: "b3", ItemID: "i1"},
	}

	grouped := groupByItem(bookings)

	require.Len(t, grouped, 2)
	assert.Len(t, grouped["i1"], 2)
	assert.Len(t, grouped["i2"], 1)
	assert.Equal(t, "b2", grouped["i2"][0].ID)
}
