package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type IdempotencyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewIdempotencyRepo(db *dbpg.DB) *IdempotencyRepository {
	return &IdempotencyRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert claims the key. The primary key makes the claim exclusive; an
// expired row is reclaimed in place so stale keys do not block forever.
// Returns false when another execution holds a live claim.
func (r *IdempotencyRepository) Insert(ctx context.Context, key, operation string, expiresAt time.Time) (bool, error) {
	query := `INSERT INTO idempotency_keys (key, operation, expires_at, created_at)
			  VALUES ($1, $2, $3, now())
			  ON CONFLICT (key) DO UPDATE
			  SET operation = EXCLUDED.operation,
			      result = NULL,
			      completed_at = NULL,
			      expires_at = EXCLUDED.expires_at,
			      created_at = now()
			  WHERE idempotency_keys.expires_at <= now()`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, operation, expiresAt)
	if err != nil {
		return false, fmt.Errorf("claim idempotency key: %w", err)
	}

	return affected(res)
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	query := `SELECT key, operation, result, completed_at, expires_at, created_at
			  FROM idempotency_keys
			  WHERE key = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}

	var rec domain.IdempotencyRecord
	if err = row.Scan(
		&rec.Key, &rec.Operation, &rec.Result,
		&rec.CompletedAt, &rec.ExpiresAt, &rec.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan idempotency key: %w", err)
	}

	return &rec, nil
}

func (r *IdempotencyRepository) StoreResult(ctx context.Context, key string, result []byte) error {
	// pq sends []byte as bytea, which jsonb rejects; pass text and cast.
	query := `UPDATE idempotency_keys
			  SET result = $2::jsonb, completed_at = now()
			  WHERE key = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, string(result))
	if err != nil {
		return fmt.Errorf("store idempotency result: %w", err)
	}

	return nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM idempotency_keys WHERE key = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		return fmt.Errorf("delete idempotency key: %w", err)
	}

	return nil
}
