package ports

import (
	"context"

	"github.com/akulagin/itemshare/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id string) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID string) ([]*domain.ItemRequest, error)
	ListByOthers(ctx context.Context, userID string) ([]*domain.ItemRequest, error)
}
