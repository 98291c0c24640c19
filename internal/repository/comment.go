package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/akulagin/itemshare/internal/domain"
)

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, item_id, author_id, text, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.ItemID, c.AuthorID, c.Text, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.Comment, error) {
	query := `SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
			  FROM comments c
			  JOIN users u ON u.id = c.author_id
			  WHERE c.item_id = $1
			  ORDER BY c.created_at`

	return r.list(ctx, query, itemID)
}

func (r *CommentRepository) ListByItems(ctx context.Context, itemIDs []string) ([]*domain.Comment, error) {
	query := `SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
			  FROM comments c
			  JOIN users u ON u.id = c.author_id
			  WHERE c.item_id = ANY($1)
			  ORDER BY c.created_at`

	return r.list(ctx, query, pq.Array(itemIDs))
}

func (r *CommentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Comment, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
