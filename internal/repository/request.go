package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/akulagin/itemshare/internal/domain"
)

const requestColumns = `id, requestor_id, description, created_at`

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO requests (` + requestColumns + `)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		req.ID, req.RequestorID, req.Description, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.ItemRequest
	if err = row.Scan(&req.ID, &req.RequestorID, &req.Description, &req.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewMissing("request not found")
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) ListByRequestor(ctx context.Context, requestorID string) ([]*domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE requestor_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, requestorID)
}

func (r *RequestRepository) ListByOthers(ctx context.Context, userID string) ([]*domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE requestor_id <> $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ItemRequest, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err = rows.Scan(&req.ID, &req.RequestorID, &req.Description, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}
