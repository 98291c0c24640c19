package ports

import (
	"context"

	"github.com/akulagin/itemshare/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByItem(ctx context.Context, itemID string) ([]*domain.Comment, error)
	ListByItems(ctx context.Context, itemIDs []string) ([]*domain.Comment, error)
}
