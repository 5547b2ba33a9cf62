package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PayoutRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPayoutRepo(db *dbpg.DB) *PayoutRepository {
	return &PayoutRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// UpsertByExternalID mirrors the processor payout object. Webhook replays and
// out-of-order delivery resolve to the latest write for the same external id.
func (r *PayoutRepository) UpsertByExternalID(ctx context.Context, p *domain.Payout) error {
	query := `INSERT INTO payouts (id, external_id, provider_id, amount_cents, currency, status, arrival_date, failure_code, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (external_id) DO UPDATE
			  SET status = EXCLUDED.status,
			      arrival_date = EXCLUDED.arrival_date,
			      failure_code = EXCLUDED.failure_code,
			      updated_at = now()`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.ExternalID, p.ProviderID, p.AmountCents, p.Currency,
		p.Status, p.ArrivalDate, p.FailureCode, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert payout: %w", err)
	}

	return nil
}
