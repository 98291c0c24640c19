package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/clock"
	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookings *mocks.MockBookingStore
	items    *mocks.MockItemRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockBookingNotifier
	events   *mocks.MockEventPublisher
	now      time.Time
	svc      *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookings: mocks.NewMockBookingStore(t),
		items:    mocks.NewMockItemRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
		events:   mocks.NewMockEventPublisher(t),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewBookingService(
		f.bookings, f.items, f.users, f.notifier, f.events,
		clock.Fixed{Instant: f.now}, newTestLogger(t),
	)
	return f
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner", Available: true}
	owner := &domain.User{ID: "owner", Name: "Alice"}
	start := f.now.Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	f.users.EXPECT().Exists(mock.Anything, "booker").Return(true, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.bookings.EXPECT().ExistsApprovedOverlap(mock.Anything, "i1", start, end).Return(false, nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.events.EXPECT().PublishBookingEvent(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, "owner").Return(owner, nil)
	f.notifier.EXPECT().NotifyBookingRequested(mock.Anything, owner, item, mock.Anything).Return()

	booking, err := f.svc.Create(context.Background(), "booker", domain.CreateBookingInput{
		ItemID: "i1", Start: start, End: end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaiting, booking.Status)
	assert.Equal(t, "i1", booking.ItemID)
	assert.Equal(t, "booker", booking.BookerID)
	assert.Equal(t, f.now, booking.CreatedAt)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_InvalidWindow(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), "booker", domain.CreateBookingInput{
		ItemID: "i1", Start: f.now.Add(2 * time.Hour), End: f.now.Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_UnknownUser(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "ghost").Return(false, nil)

	_, err := f.svc.Create(context.Background(), "ghost", domain.CreateBookingInput{
		ItemID: "i1", Start: f.now.Add(time.Hour), End: f.now.Add(2 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Create_OwnItem(t *testing.T) {
	f := newBookingFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner", Available: true}

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)

	_, err := f.svc.Create(context.Background(), "owner", domain.CreateBookingInput{
		ItemID: "i1", Start: f.now.Add(time.Hour), End: f.now.Add(2 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Create_ItemUnavailable(t *testing.T) {
	f := newBookingFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner", Available: false}

	f.users.EXPECT().Exists(mock.Anything, "booker").Return(true, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)

	_, err := f.svc.Create(context.Background(), "booker", domain.CreateBookingInput{
		ItemID: "i1", Start: f.now.Add(time.Hour), End: f.now.Add(2 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_OverlapConflict(t *testing.T) {
	f := newBookingFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner", Available: true}
	start := f.now.Add(time.Hour)
	end := f.now.Add(2 * time.Hour)

	f.users.EXPECT().Exists(mock.Anything, "booker").Return(true, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.bookings.EXPECT().ExistsApprovedOverlap(mock.Anything, "i1", start, end).Return(true, nil)

	_, err := f.svc.Create(context.Background(), "booker", domain.CreateBookingInput{
		ItemID: "i1", Start: start, End: end,
	})

	assert.ErrorIs(t, err, domain.ErrTimeConflict)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_Approve(t *testing.T) {
	f := newBookingFixture(t)

	waiting := &domain.Booking{
		ID: "b1", ItemID: "i1", BookerID: "booker",
		Status: domain.BookingStatusWaiting,
	}
	approved := &domain.Booking{
		ID: "b1", ItemID: "i1", BookerID: "booker",
		Status: domain.BookingStatusApproved,
	}
	item := &domain.Item{ID: "i1", OwnerID: "owner"}
	booker := &domain.User{ID: "booker", Name: "Bob"}

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.bookings.EXPECT().GetByIDForOwner(mock.Anything, "b1", "owner").Return(waiting, nil)
	f.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusWaiting, domain.BookingStatusApproved).Return(approved, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.events.EXPECT().PublishBookingEvent(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, "booker").Return(booker, nil)
	f.notifier.EXPECT().NotifyBookingApproved(mock.Anything, booker, item, approved).Return()

	updated, err := f.svc.UpdateStatus(context.Background(), "b1", "owner", true)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, updated.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_UpdateStatus_Reject(t *testing.T) {
	f := newBookingFixture(t)

	waiting := &domain.Booking{
		ID: "b1", ItemID: "i1", BookerID: "booker",
		Status: domain.BookingStatusWaiting,
	}
	rejected := &domain.Booking{
		ID: "b1", ItemID: "i1", BookerID: "booker",
		Status: domain.BookingStatusRejected,
	}
	item := &domain.Item{ID: "i1", OwnerID: "owner"}
	booker := &domain.User{ID: "booker", Name: "Bob"}

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.bookings.EXPECT().GetByIDForOwner(mock.Anything, "b1", "owner").Return(waiting, nil)
	f.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusWaiting, domain.BookingStatusRejected).Return(rejected, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.events.EXPECT().PublishBookingEvent(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, "booker").Return(booker, nil)
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, booker, item, rejected).Return()

	updated, err := f.svc.UpdateStatus(context.Background(), "b1", "owner", false)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, updated.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_UpdateStatus_SecondDecision(t *testing.T) {
	f := newBookingFixture(t)

	decided := &domain.Booking{
		ID: "b1", ItemID: "i1", BookerID: "booker",
		Status: domain.BookingStatusApproved,
	}

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.bookings.EXPECT().GetByIDForOwner(mock.Anything, "b1", "owner").Return(decided, nil)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "owner", false)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_ForeignBooking(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "stranger").Return(true, nil)
	f.bookings.EXPECT().GetByIDForOwner(mock.Anything, "b1", "stranger").
		Return(nil, domain.NewNotVisible("booking b1 is not visible"))

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "stranger", true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_GetByID(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", BookerID: "booker", Status: domain.BookingStatusWaiting}

	f.users.EXPECT().Exists(mock.Anything, "booker").Return(true, nil)
	f.bookings.EXPECT().GetByIDForBookerOrOwner(mock.Anything, "b1", "booker").Return(booking, nil)

	got, err := f.svc.GetByID(context.Background(), "b1", "booker")

	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestBookingService_ListForBooker_StateParsing(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{{ID: "b1"}}

	f.users.EXPECT().Exists(mock.Anything, "booker").Return(true, nil)
	f.bookings.EXPECT().ListByBooker(mock.Anything, "booker", domain.StateFuture, f.now).Return(bookings, nil)

	got, err := f.svc.ListForBooker(context.Background(), "booker", "future")

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}

func TestBookingService_ListForBooker_EmptyStateDefaultsToAll(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "booker").Return(true, nil)
	f.bookings.EXPECT().ListByBooker(mock.Anything, "booker", domain.StateAll, f.now).Return(nil, nil)

	_, err := f.svc.ListForBooker(context.Background(), "booker", "")

	assert.NoError(t, err)
}

func TestBookingService_ListForBooker_UnknownState(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.ListForBooker(context.Background(), "booker", "bogus")

	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestBookingService_ListForOwner(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.bookings.EXPECT().ListByOwner(mock.Anything, "owner", domain.StateWaiting, f.now).Return(bookings, nil)

	got, err := f.svc.ListForOwner(context.Background(), "owner", "WAITING")

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}

func TestBookingService_CancelStale(t *testing.T) {
	f := newBookingFixture(t)

	stale := &domain.Booking{
		ID: "b1", ItemID: "i1", BookerID: "booker",
		Status: domain.BookingStatusCanceled,
	}
	item := &domain.Item{ID: "i1", OwnerID: "owner"}
	booker := &domain.User{ID: "booker"}

	f.bookings.EXPECT().CancelStaleWaiting(mock.Anything, f.now).Return([]*domain.Booking{stale}, nil)
	f.events.EXPECT().PublishBookingEvent(mock.Anything, mock.Anything).Return(nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.users.EXPECT().GetByID(mock.Anything, "booker").Return(booker, nil)
	f.notifier.EXPECT().NotifyBookingCanceled(mock.Anything, booker, item, stale).Return()

	canceled, err := f.svc.CancelStale(context.Background())

	require.NoError(t, err)
	require.Len(t, canceled, 1)
	assert.Equal(t, "b1", canceled[0].ID)

	time.Sleep(50 * time.Millisecond) // goroutine announce
}

func TestBookingService_CancelStale_Empty(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().CancelStaleWaiting(mock.Anything, f.now).Return(nil, nil)

	canceled, err := f.svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, canceled)
}

func TestBookingService_CancelStale_StoreError(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().CancelStaleWaiting(mock.Anything, f.now).Return(nil, errors.New("db down"))

	_, err := f.svc.CancelStale(context.Background())

	assert.Error(t, err)
}
