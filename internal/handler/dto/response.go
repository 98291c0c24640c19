package dto

import (
	"time"

	"github.com/akulagin/itemshare/internal/domain"
)

type BookingResponse struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	BookerID  string `json:"booker_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type BookingSummaryResponse struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	BookerID string `json:"booker_id"`
}

type ItemResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"request_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingSummaryResponse `json:"last_booking,omitempty"`
	NextBooking *BookingSummaryResponse `json:"next_booking,omitempty"`
	Comments    []CommentResponse       `json:"comments"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
}

type ItemRequestResponse struct {
	ID          string         `json:"id"`
	RequestorID string         `json:"requestor_id"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	Items       []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		Start:     b.Start.Format(time.RFC3339),
		End:       b.End.Format(time.RFC3339),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingSummaryResponse(s *domain.BookingSummary) *BookingSummaryResponse {
	if s == nil {
		return nil
	}
	return &BookingSummaryResponse{
		ID:       s.ID,
		Start:    s.Start.Format(time.RFC3339),
		End:      s.End.Format(time.RFC3339),
		BookerID: s.BookerID,
	}
}

func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}

func ToItemDetailsResponse(d *domain.ItemDetails) ItemDetailsResponse {
	comments := make([]CommentResponse, 0, len(d.Comments))
	for i := range d.Comments {
		comments = append(comments, ToCommentResponse(&d.Comments[i]))
	}

	return ItemDetailsResponse{
		ItemResponse: ToItemResponse(&d.Item),
		LastBooking:  ToBookingSummaryResponse(d.LastBooking),
		NextBooking:  ToBookingSummaryResponse(d.NextBooking),
		Comments:     comments,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToItemRequestResponse(req *domain.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          req.ID,
		RequestorID: req.RequestorID,
		Description: req.Description,
		CreatedAt:   req.CreatedAt.Format(time.RFC3339),
		Items:       []ItemResponse{},
	}
}

func ToItemRequestDetailsResponse(d *domain.ItemRequestDetails) ItemRequestResponse {
	res := ToItemRequestResponse(&d.Request)
	for i := range d.Items {
		res.Items = append(res.Items, ToItemResponse(&d.Items[i]))
	}
	return res
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}
