package dto

type CreateBookingRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}
