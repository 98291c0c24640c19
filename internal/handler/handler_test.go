package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/handler/dto"
	hmocks "github.com/akulagin/itemshare/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockItemSvc, *hmocks.MockUserSvc, *hmocks.MockRequestSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	itemSvc := hmocks.NewMockItemSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	requestSvc := hmocks.NewMockRequestSvc(t)

	h := NewHandler(bookingSvc, itemSvc, userSvc, requestSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/owner", h.ListOwnerBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBookingStatus)
		api.POST("/items", h.CreateItem)
		api.GET("/items", h.ListItems)
		api.GET("/items/search", h.SearchItems)
		api.GET("/items/:id", h.GetItem)
		api.PATCH("/items/:id", h.UpdateItem)
		api.POST("/items/:id/comment", h.AddComment)
		api.POST("/requests", h.CreateRequest)
		api.GET("/requests", h.ListOwnRequests)
		api.GET("/requests/all", h.ListAllRequests)
		api.GET("/requests/:id", h.GetRequest)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PATCH("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
	}

	return bookingSvc, itemSvc, userSvc, requestSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	itemID := uuid.New().String()
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	booking := &domain.Booking{
		ID:       uuid.New().String(),
		ItemID:   itemID,
		BookerID: userID,
		Start:    start,
		End:      end,
		Status:   domain.BookingStatusWaiting,
	}
	bookingSvc.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", userID, dto.CreateBookingRequest{
		ItemID: itemID,
		Start:  start.Format(time.RFC3339),
		End:    end.Format(time.RFC3339),
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "WAITING", resp.Status)
}

func TestHandler_CreateBooking_MissingUserHeader(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "", dto.CreateBookingRequest{
		ItemID: uuid.New().String(),
		Start:  time.Now().Format(time.RFC3339),
		End:    time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BadTimestamp(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", uuid.New().String(), dto.CreateBookingRequest{
		ItemID: uuid.New().String(),
		Start:  "yesterday",
		End:    time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		code int
	}{
		{"time conflict", domain.ErrTimeConflict, http.StatusBadRequest},
		{"item unavailable", domain.ErrItemUnavailable, http.StatusBadRequest},
		{"not found", domain.NewNotVisible("item is not visible"), http.StatusNotFound},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			bookingSvc, _, _, _, r := setupRouter(t)

			userID := uuid.New().String()
			bookingSvc.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, tc.err)

			start := time.Now().UTC()
			w := doJSON(t, r, http.MethodPost, "/api/bookings", userID, dto.CreateBookingRequest{
				ItemID: uuid.New().String(),
				Start:  start.Format(time.RFC3339),
				End:    start.Add(time.Hour).Format(time.RFC3339),
			})

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_UpdateBookingStatus_Approve(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingID := uuid.New().String()

	approved := &domain.Booking{ID: bookingID, Status: domain.BookingStatusApproved}
	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, userID, true).Return(approved, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"?approved=true", userID, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APPROVED", resp.Status)
}

func TestHandler_UpdateBookingStatus_BadApprovedParam(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+uuid.New().String()+"?approved=maybe", uuid.New().String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_SecondDecision(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingID := uuid.New().String()

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, userID, false).
		Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"?approved=false", userID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingID := uuid.New().String()

	bookingSvc.EXPECT().GetByID(mock.Anything, bookingID, userID).
		Return(nil, domain.NewMissing("booking not found"))

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_UnknownState(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().ListForBooker(mock.Anything, userID, "bogus").
		Return(nil, domain.ErrUnknownState)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?state=bogus", userID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOwnerBookings(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: uuid.New().String(), Status: domain.BookingStatusWaiting},
		{ID: uuid.New().String(), Status: domain.BookingStatusApproved},
	}
	bookingSvc.EXPECT().ListForOwner(mock.Anything, userID, "waiting").Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/owner?state=waiting", userID, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Items ---

func TestHandler_CreateItem(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	item := &domain.Item{ID: uuid.New().String(), OwnerID: userID, Name: "Drill", Available: true}
	itemSvc.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(item, nil)

	w := doJSON(t, r, http.MethodPost, "/api/items", userID, dto.CreateItemRequest{Name: "Drill"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Drill", resp.Name)
	assert.True(t, resp.Available)
}

func TestHandler_GetItem_WithProjection(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	itemID := uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)

	details := &domain.ItemDetails{
		Item: domain.Item{ID: itemID, OwnerID: userID, Name: "Drill"},
		LastBooking: &domain.BookingSummary{
			ID: uuid.New().String(), Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour),
		},
		NextBooking: &domain.BookingSummary{
			ID: uuid.New().String(), Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour),
		},
	}
	itemSvc.EXPECT().GetByID(mock.Anything, itemID, userID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/items/"+itemID, userID, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ItemDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LastBooking)
	require.NotNil(t, resp.NextBooking)
	assert.Equal(t, details.LastBooking.ID, resp.LastBooking.ID)
}

func TestHandler_SearchItems(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	items := []*domain.Item{{ID: uuid.New().String(), Name: "Drill", Available: true}}
	itemSvc.EXPECT().Search(mock.Anything, "drill").Return(items, nil)

	w := doJSON(t, r, http.MethodGet, "/api/items/search?text=drill", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_AddComment_NotAllowed(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	itemID := uuid.New().String()

	itemSvc.EXPECT().AddComment(mock.Anything, userID, itemID, "nice").
		Return(nil, domain.ErrCommentNotAllowed)

	w := doJSON(t, r, http.MethodPost, "/api/items/"+itemID+"/comment", userID, dto.CommentRequest{Text: "nice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddComment(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	itemID := uuid.New().String()

	comment := &domain.Comment{ID: uuid.New().String(), ItemID: itemID, AuthorName: "Bob", Text: "nice"}
	itemSvc.EXPECT().AddComment(mock.Anything, userID, itemID, "nice").Return(comment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/items/"+itemID+"/comment", userID, dto.CommentRequest{Text: "nice"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bob", resp.AuthorName)
}

// --- Requests ---

func TestHandler_CreateRequest(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	userID := uuid.New().String()
	req := &domain.ItemRequest{
		ID:          uuid.New().String(),
		RequestorID: userID,
		Description: "need a cordless drill",
	}
	requestSvc.EXPECT().Create(mock.Anything, userID, "need a cordless drill").Return(req, nil)

	w := doJSON(t, r, http.MethodPost, "/api/requests", userID, dto.CreateItemRequestRequest{
		Description: "need a cordless drill",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ItemRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, req.ID, resp.ID)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestHandler_CreateRequest_MissingDescription(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/requests", uuid.New().String(), dto.CreateItemRequestRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOwnRequests(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	userID := uuid.New().String()
	details := []*domain.ItemRequestDetails{
		{Request: domain.ItemRequest{ID: "r1", RequestorID: userID}, Items: []domain.Item{{ID: "i1", Name: "Drill"}}},
	}
	requestSvc.EXPECT().ListOwn(mock.Anything, userID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/requests", userID, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ItemRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Items, 1)
	assert.Equal(t, "Drill", resp[0].Items[0].Name)
}

func TestHandler_ListAllRequests(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	userID := uuid.New().String()
	details := []*domain.ItemRequestDetails{
		{Request: domain.ItemRequest{ID: "r1", RequestorID: uuid.New().String()}},
		{Request: domain.ItemRequest{ID: "r2", RequestorID: uuid.New().String()}},
	}
	requestSvc.EXPECT().ListOthers(mock.Anything, userID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/requests/all", userID, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ItemRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetRequest_NotFound(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	userID := uuid.New().String()
	requestID := uuid.New().String()
	requestSvc.EXPECT().GetByID(mock.Anything, requestID, userID).
		Return(nil, domain.NewMissing("request not found"))

	w := doJSON(t, r, http.MethodGet, "/api/requests/"+requestID, userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRequest_BadID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/requests/not-a-uuid", uuid.New().String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Name: "Alice", Email: "alice@example.com"}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateUser_InvalidEmail(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteUser(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	userSvc.EXPECT().Delete(mock.Anything, userID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/users/"+userID, "", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_GetUser_BadID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
