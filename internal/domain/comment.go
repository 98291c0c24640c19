package domain

import "time"

// Comment can only be left by a user with a completed APPROVED booking for
// the item.
type Comment struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
