package domain

import "time"

// ItemRequest is a user's ask for an item nobody has listed yet. Other
// users answer it by listing an item linked to the request.
type ItemRequest struct {
	ID          string    `json:"id"`
	RequestorID string    `json:"requestor_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemRequestDetails pairs a request with the items listed in answer to
// it.
type ItemRequestDetails struct {
	Request ItemRequest `json:"request"`
	Items   []Item      `json:"items"`
}
