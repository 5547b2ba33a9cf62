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

const bookingColumns = `id, customer_id, provider_id, service_id, status, price_cents,
		scheduled_at, payment_intent_id, canceled_by, cancel_reason, created_at, updated_at`

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

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.CustomerID, b.ProviderID, b.ServiceID, b.Status, b.PriceCents,
		b.ScheduledAt, b.PaymentIntentID, b.CanceledBy, b.CancelReason,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus applies the transition only when the stored status is one of
// from, so concurrent writers cannot both win. A zero rows-affected result is
// returned as false for the caller to diagnose.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, to domain.BookingStatus, from ...domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, to, pq.Array(from))
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("booking rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) SetPaid(ctx context.Context, id, paymentIntentID string) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, payment_intent_id = $3, updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusPaid, paymentIntentID, domain.BookingStatusAccepted,
	)
	if err != nil {
		return false, fmt.Errorf("set booking paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("booking rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) SetCanceled(ctx context.Context, id string, to domain.BookingStatus, canceledBy, reason string, from ...domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, canceled_by = $3, cancel_reason = $4, updated_at = now()
			  WHERE id = $1 AND status = ANY($5)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, to, canceledBy, reason, pq.Array(from))
	if err != nil {
		return false, fmt.Errorf("set booking canceled: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("booking rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, customerID)
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE provider_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, providerID)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.ProviderID, &b.ServiceID, &b.Status, &b.PriceCents,
		&b.ScheduledAt, &b.PaymentIntentID, &b.CanceledBy, &b.CancelReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}
