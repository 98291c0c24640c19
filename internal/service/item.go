package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/clock"
	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports"
)

type ItemService struct {
	items    ports.ItemRepo
	users    ports.UserRepo
	bookings ports.BookingStore
	comments ports.CommentRepo
	requests ports.RequestRepo
	clock    clock.Clock
	logger   logger.Logger
}

func NewItemService(
	items ports.ItemRepo,
	users ports.UserRepo,
	bookings ports.BookingStore,
	comments ports.CommentRepo,
	requests ports.RequestRepo,
	clk clock.Clock,
	logger logger.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		clock:    clk,
		logger:   logger,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID string, input domain.CreateItemInput) (*domain.Item, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	if input.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *input.RequestID); err != nil {
			return nil, fmt.Errorf("get request: %w", err)
		}
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := s.clock.Now()
	item := &domain.Item{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Available:   available,
		RequestID:   input.RequestID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.logger.Info("item created",
		logger.String("item_id", item.ID),
		logger.String("owner_id", ownerID),
	)

	return item, nil
}

// Update applies a partial update. Only the owner can modify the item; a
// scoped lookup hides items belonging to other users.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID string, input domain.UpdateItemInput) (*domain.Item, error) {
	item, err := s.items.GetByIDForOwner(ctx, itemID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	item.UpdatedAt = s.clock.Now()

	if err = s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

// GetByID returns the detail view. Last/next booking summaries are
// projected only when the viewer owns the item; other viewers see the item
// and its comments without booking data.
func (s *ItemService) GetByID(ctx context.Context, itemID, viewerID string) (*domain.ItemDetails, error) {
	if err := s.validateUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	details := &domain.ItemDetails{
		Item:     *item,
		Comments: dereferenceComments(comments),
	}

	if item.OwnerID == viewerID {
		bookings, err := s.bookings.ListByItemForOwner(ctx, itemID, viewerID)
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		now := s.clock.Now()
		details.LastBooking = lastApproved(bookings, now)
		details.NextBooking = nextApproved(bookings, now)
	}

	return details, nil
}

// ListByOwner builds the owner's item list with last/next projections per
// item. All approved bookings are fetched in one query and grouped in
// memory, regardless of how many items the owner has.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.ItemDetails, error) {
	if err := s.validateUserExists(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return []*domain.ItemDetails{}, nil
	}

	bookings, err := s.bookings.ListApprovedByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	bookingsForItems := groupByItem(bookings)

	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}
	comments, err := s.comments.ListByItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	commentsForItems := make(map[string][]*domain.Comment, len(items))
	for _, c := range comments {
		commentsForItems[c.ItemID] = append(commentsForItems[c.ItemID], c)
	}

	now := s.clock.Now()
	res := make([]*domain.ItemDetails, 0, len(items))
	for _, item := range items {
		res = append(res, &domain.ItemDetails{
			Item:        *item,
			LastBooking: lastApproved(bookingsForItems[item.ID], now),
			NextBooking: nextApproved(bookingsForItems[item.ID], now),
			Comments:    dereferenceComments(commentsForItems[item.ID]),
		})
	}

	return res, nil
}

func (s *ItemService) Search(ctx context.Context, text string) ([]*domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*domain.Item{}, nil
	}
	return s.items.Search(ctx, text)
}

// AddComment lets a user comment on an item only after a completed
// APPROVED booking of that item.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrValidation)
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	completed, err := s.bookings.HasCompletedBooking(ctx, itemID, authorID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("check completed bookings: %w", err)
	}
	if !completed {
		return nil, domain.ErrCommentNotAllowed
	}

	comment := &domain.Comment{
		ID:         uuid.New().String(),
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
		CreatedAt:  s.clock.Now(),
	}
	if err = s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

func (s *ItemService) validateUserExists(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return domain.NewMissing("user not found")
	}
	return nil
}

func dereferenceComments(comments []*domain.Comment) []domain.Comment {
	res := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		res = append(res, *c)
	}
	return res
}
