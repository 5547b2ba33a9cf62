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

type WebhookEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWebhookEventRepo(db *dbpg.DB) *WebhookEventRepository {
	return &WebhookEventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert records the delivery. The (provider, event_id) unique constraint is
// the dedup mechanism: a replayed event surfaces as ErrDuplicateEvent.
func (r *WebhookEventRepository) Insert(ctx context.Context, provider, eventID, eventType string) error {
	query := `INSERT INTO webhook_events (provider, event_id, event_type, created_at)
			  VALUES ($1, $2, $3, now())`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, provider, eventID, eventType)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("insert webhook event: %w", err)
	}

	return nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, provider, eventID string, processingErr error) error {
	var errText *string
	if processingErr != nil {
		s := processingErr.Error()
		errText = &s
	}

	query := `UPDATE webhook_events
			  SET processed_at = now(), processing_error = $3
			  WHERE provider = $1 AND event_id = $2`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, provider, eventID, errText)
	if err != nil {
		return fmt.Errorf("mark webhook event processed: %w", err)
	}

	return nil
}
