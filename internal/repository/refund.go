package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RefundRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRefundRepo(db *dbpg.DB) *RefundRepository {
	return &RefundRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create records a refund attempt. The partial unique index on
// refunds(booking_id) admits one non-failed row per booking, so the
// insert doubles as the mutex against a second concurrent refund.
func (r *RefundRepository) Create(ctx context.Context, ref *domain.Refund) error {
	query := `INSERT INTO refunds (id, booking_id, amount_cents, reason, status, external_id, processed_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		ref.ID, ref.BookingID, ref.AmountCents, ref.Reason, ref.Status,
		ref.ExternalID, ref.ProcessedBy, ref.CreatedAt, ref.UpdatedAt,
	)
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: refund for booking %s", domain.ErrOperationInFlight, ref.BookingID)
	}
	if err != nil {
		return fmt.Errorf("insert refund: %w", err)
	}

	return nil
}

func (r *RefundRepository) SetOutcome(ctx context.Context, id string, status domain.RefundStatus, externalID *string) error {
	query := `UPDATE refunds
			  SET status = $2, external_id = $3, updated_at = now()
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, externalID)
	if err != nil {
		return fmt.Errorf("set refund outcome: %w", err)
	}

	return nil
}

func (r *RefundRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Refund, error) {
	query := `SELECT id, booking_id, amount_cents, reason, status, external_id, processed_by, created_at, updated_at
			  FROM refunds
			  WHERE booking_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list refunds: %w", err)
	}
	defer rows.Close()

	var res []*domain.Refund
	for rows.Next() {
		var ref domain.Refund
		if err = rows.Scan(
			&ref.ID, &ref.BookingID, &ref.AmountCents, &ref.Reason, &ref.Status,
			&ref.ExternalID, &ref.ProcessedBy, &ref.CreatedAt, &ref.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan refund: %w", err)
		}
		res = append(res, &ref)
	}

	return res, rows.Err()
}
