package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/clock"
	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports"
)

// BookingService implements the booking engine: state transitions, overlap
// validation and the bucketed listing views.
type BookingService struct {
	bookings ports.BookingStore
	items    ports.ItemRepo
	users    ports.UserRepo
	notifier ports.BookingNotifier
	events   ports.EventPublisher
	clock    clock.Clock
	logger   logger.Logger
}

func NewBookingService(
	bookings ports.BookingStore,
	items ports.ItemRepo,
	users ports.UserRepo,
	notifier ports.BookingNotifier,
	events ports.EventPublisher,
	clk clock.Clock,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		notifier: notifier,
		events:   events,
		clock:    clk,
		logger:   logger,
	}
}

// Create validates the request and persists a new WAITING booking. The
// overlap pre-check here gives fast failure; the store re-checks it under
// a per-item lock, so a concurrent duplicate still loses.
func (s *BookingService) Create(ctx context.Context, bookerID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateAuthorized(ctx, bookerID); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.OwnerID == bookerID {
		// Reported as not-found rather than forbidden so ownership is not
		// revealed to the caller.
		return nil, domain.NewNotVisible("booker can not be the owner of the item to book")
	}
	if !item.Available {
		return nil, domain.ErrItemUnavailable
	}

	conflict, err := s.bookings.ExistsApprovedOverlap(ctx, item.ID, input.Start, input.End)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if conflict {
		return nil, domain.ErrTimeConflict
	}

	now := s.clock.Now()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		BookerID:  bookerID,
		Start:     input.Start,
		End:       input.End,
		Status:    domain.BookingStatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("item_id", item.ID),
		logger.String("booker_id", bookerID),
	)

	s.announce(ctx, domain.BookingEventRequested, booking, item, item.OwnerID)

	return booking, nil
}

// UpdateStatus applies the owner's decision on a WAITING booking. The
// booking is loaded scoped to the owner, so owners can only decide on
// bookings of their own items.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, ownerID string, approved bool) (*domain.Booking, error) {
	if err := s.validateAuthorized(ctx, ownerID); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByIDForOwner(ctx, bookingID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = booking.ApplyDecision(approved); err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusWaiting, booking.Status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", updated.ID),
		logger.String("owner_id", ownerID),
		logger.String("status", string(updated.Status)),
	)

	eventType := domain.BookingEventApproved
	if !approved {
		eventType = domain.BookingEventRejected
	}
	item, err := s.items.GetByID(ctx, updated.ItemID)
	if err != nil {
		s.logger.Error("failed to get item for notification",
			logger.String("item_id", updated.ItemID),
			logger.String("error", err.Error()),
		)
		return updated, nil
	}
	s.announce(ctx, eventType, updated, item, updated.BookerID)

	return updated, nil
}

// GetByID returns the booking only to its booker or the item's owner;
// everyone else gets a not-found.
func (s *BookingService) GetByID(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	if err := s.validateAuthorized(ctx, userID); err != nil {
		return nil, err
	}
	booking, err := s.bookings.GetByIDForBookerOrOwner(ctx, bookingID, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) ListForBooker(ctx context.Context, bookerID, state string) ([]*domain.Booking, error) {
	st, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	if err = s.validateAuthorized(ctx, bookerID); err != nil {
		return nil, err
	}
	return s.bookings.ListByBooker(ctx, bookerID, st, s.clock.Now())
}

func (s *BookingService) ListForOwner(ctx context.Context, ownerID, state string) ([]*domain.Booking, error) {
	st, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	if err = s.validateAuthorized(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.bookings.ListByOwner(ctx, ownerID, st, s.clock.Now())
}

// CancelStale marks WAITING bookings whose window has already ended as
// CANCELED. This is the only path into CANCELED; there is no user-facing
// cancel operation.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	canceled, err := s.bookings.CancelStaleWaiting(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(canceled) > 0 {
		s.logger.Info("stale bookings canceled",
			logger.Int("count", len(canceled)),
		)
		go s.announceCanceled(context.WithoutCancel(ctx), canceled)
	}

	return canceled, nil
}

func (s *BookingService) announceCanceled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		if err := s.events.PublishBookingEvent(ctx, domain.NewBookingEvent(domain.BookingEventCanceled, b, s.clock.Now())); err != nil {
			s.logger.Error("failed to publish booking event",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}

		item, err := s.items.GetByID(ctx, b.ItemID)
		if err != nil {
			s.logger.Error("failed to get item for cancel notification",
				logger.String("item_id", b.ItemID),
			)
			continue
		}
		booker, err := s.users.GetByID(ctx, b.BookerID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", b.BookerID),
			)
			continue
		}
		s.notifier.NotifyBookingCanceled(ctx, booker, item, b)
	}
}

// announce publishes the lifecycle event and notifies the interested user
// (the owner for new requests, the booker for decisions). Notification
// failures never fail the operation.
func (s *BookingService) announce(ctx context.Context, eventType domain.BookingEventType, b *domain.Booking, item *domain.Item, recipientID string) {
	if err := s.events.PublishBookingEvent(ctx, domain.NewBookingEvent(eventType, b, s.clock.Now())); err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}

	recipient, err := s.users.GetByID(ctx, recipientID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", recipientID),
			logger.String("error", err.Error()),
		)
		return
	}

	bg := context.WithoutCancel(ctx)
	switch eventType {
	case domain.BookingEventRequested:
		go s.notifier.NotifyBookingRequested(bg, recipient, item, b)
	case domain.BookingEventApproved:
		go s.notifier.NotifyBookingApproved(bg, recipient, item, b)
	case domain.BookingEventRejected:
		go s.notifier.NotifyBookingRejected(bg, recipient, item, b)
	case domain.BookingEventCanceled:
		go s.notifier.NotifyBookingCanceled(bg, recipient, item, b)
	}
}

// validateAuthorized hides "user missing" behind a generic
// authorization failure so the entry points do not leak which principals
// exist.
func (s *BookingService) validateAuthorized(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: user %s", domain.ErrUnauthorized, userID)
		}
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: user %s", domain.ErrUnauthorized, userID)
	}
	return nil
}
