package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/handler/dto"
)

// UserIDHeader carries the acting user's identity. Authentication itself
// is the gateway's job; this service trusts the header.
const UserIDHeader = "X-User-Id"

type BookingSvc interface {
	Create(ctx context.Context, bookerID string, input domain.CreateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, ownerID string, approved bool) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	ListForBooker(ctx context.Context, bookerID, state string) ([]*domain.Booking, error)
	ListForOwner(ctx context.Context, ownerID, state string) ([]*domain.Booking, error)
}

type ItemSvc interface {
	Create(ctx context.Context, ownerID string, input domain.CreateItemInput) (*domain.Item, error)
	Update(ctx context.Context, ownerID, itemID string, input domain.UpdateItemInput) (*domain.Item, error)
	GetByID(ctx context.Context, itemID, viewerID string) (*domain.ItemDetails, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.ItemDetails, error)
	Search(ctx context.Context, text string) ([]*domain.Item, error)
	AddComment(ctx context.Context, authorID, itemID, text string) (*domain.Comment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, userID string, input domain.UpdateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type RequestSvc interface {
	Create(ctx context.Context, requestorID, description string) (*domain.ItemRequest, error)
	ListOwn(ctx context.Context, requestorID string) ([]*domain.ItemRequestDetails, error)
	ListOthers(ctx context.Context, userID string) ([]*domain.ItemRequestDetails, error)
	GetByID(ctx context.Context, requestID, viewerID string) (*domain.ItemRequestDetails, error)
}

type Handler struct {
	bookingService BookingSvc
	itemService    ItemSvc
	userService    UserSvc
	requestService RequestSvc
}

func NewHandler(bookingService BookingSvc, itemService ItemSvc, userService UserSvc, requestService RequestSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		itemService:    itemService,
		userService:    userService,
		requestService: requestService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end format, expected RFC3339"})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), userID, domain.CreateBookingInput{
		ItemID: req.ItemID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "approved must be true or false"})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForBooker(c.Request.Context(), userID, c.Query("state"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListOwnerBookings(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForOwner(c.Request.Context(), userID, c.Query("state"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Items

func (h *Handler) CreateItem(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), userID, domain.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *Handler) UpdateItem(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), userID, itemID, domain.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) GetItem(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	details, err := h.itemService.GetByID(c.Request.Context(), itemID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDetailsResponse(details))
}

func (h *Handler) ListItems(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemDetailsResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, dto.ToItemDetailsResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SearchItems(c *ginext.Context) {
	items, err := h.itemService.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ToItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddComment(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.itemService.AddComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// Requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), userID, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemRequestResponse(request))
}

func (h *Handler) ListOwnRequests(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	requests, err := h.requestService.ListOwn(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemRequestResponses(requests))
}

func (h *Handler) ListAllRequests(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	requests, err := h.requestService.ListOthers(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemRequestResponses(requests))
}

func (h *Handler) GetRequest(c *ginext.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	details, err := h.requestService.GetByID(c.Request.Context(), requestID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemRequestDetailsResponse(details))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), userID, domain.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) actingUser(c *ginext.Context) (string, bool) {
	userID := c.GetHeader(UserIDHeader)
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing or invalid " + UserIDHeader + " header"})
		return "", false
	}
	return userID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func toItemRequestResponses(requests []*domain.ItemRequestDetails) []dto.ItemRequestResponse {
	resp := make([]dto.ItemRequestResponse, 0, len(requests))
	for _, d := range requests {
		resp = append(resp, dto.ToItemRequestDetailsResponse(d))
	}
	return resp
}
