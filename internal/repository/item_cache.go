package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports"
)

// CachedItemRepo decorates an ItemRepo with a read-through Redis cache on
// GetByID, the hot path hit by every booking creation. Writes invalidate
// the cached entry; Redis failures degrade to the underlying repo.
type CachedItemRepo struct {
	inner  ports.ItemRepo
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedItemRepo(inner ports.ItemRepo, rdb *redis.Client, ttl time.Duration, logger logger.Logger) *CachedItemRepo {
	return &CachedItemRepo{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func itemCacheKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

func (r *CachedItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	key := itemCacheKey(id)

	cached, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var item domain.Item
		if err = json.Unmarshal(cached, &item); err == nil {
			return &item, nil
		}
		r.logger.Warn("corrupted item cache entry",
			logger.String("key", key),
		)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("item cache read failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}

	item, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(item); err == nil {
		if err = r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.logger.Warn("item cache write failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}

	return item, nil
}

func (r *CachedItemRepo) Create(ctx context.Context, item *domain.Item) error {
	if err := r.inner.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *CachedItemRepo) Update(ctx context.Context, item *domain.Item) error {
	if err := r.inner.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *CachedItemRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	return r.inner.GetByIDForOwner(ctx, id, ownerID)
}

func (r *CachedItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	return r.inner.ListByOwner(ctx, ownerID)
}

func (r *CachedItemRepo) ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*domain.Item, error) {
	return r.inner.ListByRequestIDs(ctx, requestIDs)
}

func (r *CachedItemRepo) Search(ctx context.Context, text string) ([]*domain.Item, error) {
	return r.inner.Search(ctx, text)
}

func (r *CachedItemRepo) invalidate(ctx context.Context, id string) {
	if err := r.rdb.Del(ctx, itemCacheKey(id)).Err(); err != nil {
		r.logger.Warn("item cache invalidation failed",
			logger.String("item_id", id),
			logger.String("error", err.Error()),
		)
	}
}
