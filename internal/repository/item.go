package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/akulagin/itemshare/internal/domain"
)

const itemColumns = `id, owner_id, name, description, available, request_id, created_at, updated_at`

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (` + itemColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		item.ID, item.OwnerID, item.Name, item.Description,
		item.Available, item.RequestID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `UPDATE items
			  SET name = $2, description = $3, available = $4, updated_at = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		item.ID, item.Name, item.Description, item.Available, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("item rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NewMissing("item not found")
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE id = $1`

	return r.getOne(ctx, query, domain.NewMissing("item not found"), id)
}

func (r *ItemRepository) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE id = $1 AND owner_id = $2`

	return r.getOne(ctx, query, domain.NewNotVisible("item not found or user is not the owner"), id, ownerID)
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE owner_id = $1
			  ORDER BY created_at`

	return r.list(ctx, query, ownerID)
}

// ListByRequestIDs returns the items listed in answer to the given
// requests.
func (r *ItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE request_id = ANY($1)
			  ORDER BY created_at`

	return r.list(ctx, query, pq.Array(requestIDs))
}

// Search matches name or description case-insensitively, available items
// only.
func (r *ItemRepository) Search(ctx context.Context, text string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE available
			    AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
			  ORDER BY created_at`

	return r.list(ctx, query, text)
}

func (r *ItemRepository) getOne(ctx context.Context, query string, miss *domain.NotFoundError, args ...any) (*domain.Item, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	var item domain.Item
	if err = row.Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Description,
		&item.Available, &item.RequestID, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, miss
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return &item, nil
}

func (r *ItemRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Item, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var res []*domain.Item
	for rows.Next() {
		var item domain.Item
		if err = rows.Scan(
			&item.ID, &item.OwnerID, &item.Name, &item.Description,
			&item.Available, &item.RequestID, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, &item)
	}

	return res, rows.Err()
}
