package ports

import (
	"context"

	"github.com/akulagin/itemshare/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*domain.Item, error)
	Search(ctx context.Context, text string) ([]*domain.Item, error)
}
