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

// RequestService manages item requests: users post what they need, other
// users answer by listing an item linked to the request.
type RequestService struct {
	requests ports.RequestRepo
	items    ports.ItemRepo
	users    ports.UserRepo
	clock    clock.Clock
	logger   logger.Logger
}

func NewRequestService(
	requests ports.RequestRepo,
	items ports.ItemRepo,
	users ports.UserRepo,
	clk clock.Clock,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		clock:    clk,
		logger:   logger,
	}
}

func (s *RequestService) Create(ctx context.Context, requestorID, description string) (*domain.ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: request description is required", domain.ErrValidation)
	}
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, fmt.Errorf("get requestor: %w", err)
	}

	req := &domain.ItemRequest{
		ID:          uuid.New().String(),
		RequestorID: requestorID,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("item request created",
		logger.String("request_id", req.ID),
		logger.String("requestor_id", requestorID),
	)

	return req, nil
}

// ListOwn returns the user's requests, newest first, each with the items
// listed in answer to it.
func (s *RequestService) ListOwn(ctx context.Context, requestorID string) ([]*domain.ItemRequestDetails, error) {
	if err := s.validateUserExists(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.requests.ListByRequestor(ctx, requestorID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.withAnswers(ctx, requests)
}

// ListOthers returns requests posted by everyone except the user, newest
// first, so the user can find requests to answer.
func (s *RequestService) ListOthers(ctx context.Context, userID string) ([]*domain.ItemRequestDetails, error) {
	if err := s.validateUserExists(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.ListByOthers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.withAnswers(ctx, requests)
}

func (s *RequestService) GetByID(ctx context.Context, requestID, viewerID string) (*domain.ItemRequestDetails, error) {
	if err := s.validateUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	items, err := s.items.ListByRequestIDs(ctx, []string{requestID})
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return &domain.ItemRequestDetails{
		Request: *req,
		Items:   dereferenceItems(items),
	}, nil
}

// withAnswers attaches answering items to each request. All answers are
// fetched in one query and grouped in memory.
func (s *RequestService) withAnswers(ctx context.Context, requests []*domain.ItemRequest) ([]*domain.ItemRequestDetails, error) {
	if len(requests) == 0 {
		return []*domain.ItemRequestDetails{}, nil
	}

	requestIDs := make([]string, 0, len(requests))
	for _, req := range requests {
		requestIDs = append(requestIDs, req.ID)
	}

	items, err := s.items.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	answersForRequests := make(map[string][]*domain.Item, len(requests))
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		answersForRequests[*item.RequestID] = append(answersForRequests[*item.RequestID], item)
	}

	res := make([]*domain.ItemRequestDetails, 0, len(requests))
	for _, req := range requests {
		res = append(res, &domain.ItemRequestDetails{
			Request: *req,
			Items:   dereferenceItems(answersForRequests[req.ID]),
		})
	}

	return res, nil
}

func (s *RequestService) validateUserExists(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return domain.NewMissing("user not found")
	}
	return nil
}

func dereferenceItems(items []*domain.Item) []domain.Item {
	res := make([]domain.Item, 0, len(items))
	for _, item := range items {
		res = append(res, *item)
	}
	return res
}
