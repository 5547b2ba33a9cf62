package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const earningsColumns = `id, booking_id, provider_id, gross_cents, platform_fee_cents,
		gst_cents, net_cents, status, transfer_id, transferred_at, created_at, updated_at`

type EarningsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEarningsRepo(db *dbpg.DB) *EarningsRepository {
	return &EarningsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert inserts the earnings row for a booking, or returns the existing row
// when one was already held. The booking_id unique index makes the hold
// at-most-once under retries and concurrent completion calls.
func (r *EarningsRepository) Upsert(ctx context.Context, e *domain.Earnings) (*domain.Earnings, error) {
	query := `INSERT INTO provider_earnings (` + earningsColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  ON CONFLICT (booking_id) DO NOTHING
			  RETURNING ` + earningsColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.ID, e.BookingID, e.ProviderID, e.GrossCents, e.PlatformFeeCents,
		e.GSTCents, e.NetCents, e.Status, e.TransferID, e.TransferredAt,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert earnings: %w", err)
	}

	got, err := scanEarnings(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Conflict path: the row already exists, return it untouched.
			return r.GetByBookingID(ctx, e.BookingID)
		}
		return nil, fmt.Errorf("scan earnings: %w", err)
	}

	return got, nil
}

func (r *EarningsRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Earnings, error) {
	query := `SELECT ` + earningsColumns + ` FROM provider_earnings WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get earnings: %w", err)
	}

	e, err := scanEarnings(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEarningsNotFound
		}
		return nil, fmt.Errorf("scan earnings: %w", err)
	}

	return e, nil
}

func (r *EarningsRepository) MarkAwaitingPayout(ctx context.Context, id string) (bool, error) {
	query := `UPDATE provider_earnings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.EarningsStatusAwaitingPayout, pq.Array(domain.TransferableStatuses),
	)
	if err != nil {
		return false, fmt.Errorf("mark earnings awaiting payout: %w", err)
	}

	return affected(res)
}

func (r *EarningsRepository) MarkTransferred(ctx context.Context, id, transferID string) (bool, error) {
	query := `UPDATE provider_earnings
			  SET status = $2, transfer_id = $3, transferred_at = now(), updated_at = now()
			  WHERE id = $1 AND status = ANY($4)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.EarningsStatusTransferred, transferID, pq.Array(domain.TransferableStatuses),
	)
	if err != nil {
		return false, fmt.Errorf("mark earnings transferred: %w", err)
	}

	return affected(res)
}

func (r *EarningsRepository) MarkRefunded(ctx context.Context, bookingID string) error {
	query := `UPDATE provider_earnings
			  SET status = $2, updated_at = now()
			  WHERE booking_id = $1 AND status = ANY($3)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID, domain.EarningsStatusRefunded, pq.Array(domain.TransferableStatuses),
	)
	if err != nil {
		return fmt.Errorf("mark earnings refunded: %w", err)
	}

	return nil
}

func (r *EarningsRepository) MarkFailedByTransferID(ctx context.Context, transferID string) (bool, error) {
	query := `UPDATE provider_earnings
			  SET status = $2, updated_at = now()
			  WHERE transfer_id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		transferID, domain.EarningsStatusFailed, domain.EarningsStatusTransferred,
	)
	if err != nil {
		return false, fmt.Errorf("mark earnings failed: %w", err)
	}

	return affected(res)
}

func (r *EarningsRepository) MarkPaidOutByTransferIDs(ctx context.Context, transferIDs []string) (int64, error) {
	if len(transferIDs) == 0 {
		return 0, nil
	}

	query := `UPDATE provider_earnings
			  SET status = $2, updated_at = now()
			  WHERE transfer_id = ANY($1) AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		pq.Array(transferIDs), domain.EarningsStatusPaidOut, domain.EarningsStatusTransferred,
	)
	if err != nil {
		return 0, fmt.Errorf("mark earnings paid out: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("earnings rows affected: %w", err)
	}

	return rows, nil
}

func (r *EarningsRepository) ListAwaitingPayout(ctx context.Context, limit int) ([]*domain.Earnings, error) {
	query := `SELECT ` + earningsColumns + `
			  FROM provider_earnings
			  WHERE status = $1
			  ORDER BY created_at
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.EarningsStatusAwaitingPayout, limit)
	if err != nil {
		return nil, fmt.Errorf("list earnings awaiting payout: %w", err)
	}
	defer rows.Close()

	var res []*domain.Earnings
	for rows.Next() {
		e, err := scanEarnings(rows)
		if err != nil {
			return nil, fmt.Errorf("scan earnings: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEarnings(row rowScanner) (*domain.Earnings, error) {
	var e domain.Earnings
	err := row.Scan(
		&e.ID, &e.BookingID, &e.ProviderID, &e.GrossCents, &e.PlatformFeeCents,
		&e.GSTCents, &e.NetCents, &e.Status, &e.TransferID, &e.TransferredAt,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}
