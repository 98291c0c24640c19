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

const bookingColumns = `id, item_id, booker_id, start_at, end_at, status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking after re-checking the approved-overlap
// predicate inside a transaction that holds the item row lock. The lock
// serializes check-then-insert per item, so two concurrent requests for
// overlapping windows cannot both pass the check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT available FROM items WHERE id = $1 FOR UPDATE`
	var available bool
	if err = tx.QueryRowContext(ctx, lockQuery, b.ItemID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewMissing("item not found")
		}
		return fmt.Errorf("lock item: %w", err)
	}
	if !available {
		return domain.ErrItemUnavailable
	}

	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1
			  AND status = $2
			  AND end_at > $3
			  AND start_at < $4)`
	var conflict bool
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.ItemID,
		domain.BookingStatusApproved, b.Start, b.End,
	).Scan(&conflict); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if conflict {
		return domain.ErrTimeConflict
	}

	insertQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.ItemID, b.BookerID, b.Start, b.End,
		b.Status, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// ExistsApprovedOverlap is the half-open occupancy check:
// existing.end > start AND existing.start < end, APPROVED bookings only.
func (r *BookingRepository) ExistsApprovedOverlap(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1
			  AND status = $2
			  AND end_at > $3
			  AND start_at < $4)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, itemID, domain.BookingStatusApproved, start, end)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	return r.getOne(ctx, query, domain.NewMissing("booking not found"), bookingID)
}

func (r *BookingRepository) GetByIDForOwner(ctx context.Context, bookingID, ownerID string) (*domain.Booking, error) {
	query := `SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN items i ON i.id = b.item_id
			  WHERE b.id = $1 AND i.owner_id = $2`

	return r.getOne(ctx, query, domain.NewNotVisible("booking not found or user is not the owner"), bookingID, ownerID)
}

func (r *BookingRepository) GetByIDForBookerOrOwner(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	query := `SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN items i ON i.id = b.item_id
			  WHERE b.id = $1 AND (b.booker_id = $2 OR i.owner_id = $2)`

	return r.getOne(ctx, query, domain.NewNotVisible("booking not found"), bookingID, userID)
}

// UpdateStatus is a conditional write guarded by the current status. It
// runs without retry: transitions are not idempotent, and a replayed
// attempt would see zero rows and misreport its own success. Zero rows
// means the booking is missing or was already decided; the follow-up read
// in the same transaction tells the two apart.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2
			  RETURNING ` + bookingColumns

	b, err := scanBooking(tx.QueryRowContext(ctx, query, bookingID, from, to))
	if err == nil {
		return b, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update status: %w", err)
	}

	var status string
	checkQuery := `SELECT status FROM bookings WHERE id = $1`
	if scanErr := tx.QueryRowContext(ctx, checkQuery, bookingID).Scan(&status); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, domain.NewMissing("booking not found")
		}
		return nil, fmt.Errorf("check booking: %w", scanErr)
	}
	return nil, domain.ErrInvalidTransition
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID string, state domain.BookingState, now time.Time) ([]*domain.Booking, error) {
	where, args := bucketPredicate("b.booker_id", state, bookerID, now)
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE ` + where + `
			  ORDER BY start_at DESC`

	return r.list(ctx, query, args...)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string, state domain.BookingState, now time.Time) ([]*domain.Booking, error) {
	where, args := bucketPredicate("i.owner_id", state, ownerID, now)
	query := `SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN items i ON i.id = b.item_id
			  WHERE ` + where + `
			  ORDER BY b.start_at DESC`

	return r.list(ctx, query, args...)
}

// bucketPredicate builds the WHERE clause for a listing bucket. It is the
// SQL form of domain.BookingState.Matches.
func bucketPredicate(subjectColumn string, state domain.BookingState, subjectID string, now time.Time) (string, []any) {
	base := subjectColumn + ` = $1`
	switch state {
	case domain.StateWaiting:
		return base + ` AND b.status = $2`, []any{subjectID, domain.BookingStatusWaiting}
	case domain.StateRejected:
		return base + ` AND b.status = $2`, []any{subjectID, domain.BookingStatusRejected}
	case domain.StateCurrent:
		return base + ` AND b.status = $2 AND b.start_at <= $3 AND b.end_at > $3`,
			[]any{subjectID, domain.BookingStatusApproved, now}
	case domain.StatePast:
		return base + ` AND b.status = $2 AND b.end_at <= $3`,
			[]any{subjectID, domain.BookingStatusApproved, now}
	case domain.StateFuture:
		return base + ` AND b.status = $2 AND b.start_at > $3`,
			[]any{subjectID, domain.BookingStatusApproved, now}
	default:
		return base, []any{subjectID}
	}
}

func (r *BookingRepository) ListByItemForOwner(ctx context.Context, itemID, ownerID string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN items i ON i.id = b.item_id
			  WHERE b.item_id = $1 AND i.owner_id = $2
			  ORDER BY b.start_at DESC`

	return r.list(ctx, query, itemID, ownerID)
}

func (r *BookingRepository) ListApprovedByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN items i ON i.id = b.item_id
			  WHERE i.owner_id = $1 AND b.status = $2
			  ORDER BY b.start_at DESC`

	return r.list(ctx, query, ownerID, domain.BookingStatusApproved)
}

func (r *BookingRepository) HasCompletedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1
			  AND booker_id = $2
			  AND status = $3
			  AND end_at < $4)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, itemID, bookerID, domain.BookingStatusApproved, now)
	if err != nil {
		return false, fmt.Errorf("check completed bookings: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan completed bookings: %w", err)
	}

	return exists, nil
}

// CancelStaleWaiting cancels WAITING bookings whose window has fully
// passed; they can no longer be approved into a usable rental.
func (r *BookingRepository) CancelStaleWaiting(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND end_at <= $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusWaiting, domain.BookingStatusCanceled, now,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, miss *domain.NotFoundError, args ...any) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, miss
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End,
			&b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
