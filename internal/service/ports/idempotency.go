package ports

import (
	"context"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
)

type IdempotencyRepo interface {
	// Insert claims the key via a unique-constraint insert, reclaiming
	// expired rows. Returns false without error when another execution
	// already holds the key.
	Insert(ctx context.Context, key, operation string, expiresAt time.Time) (bool, error)
	// Get returns nil without error when the key is unknown.
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
	StoreResult(ctx context.Context, key string, result []byte) error
	// Delete releases the key after a failed execution so a retry can run.
	Delete(ctx context.Context, key string) error
}

type WebhookEventRepo interface {
	// Insert records the event id; returns domain.ErrDuplicateEvent when the
	// same (provider, event id) pair was already delivered.
	Insert(ctx context.Context, provider, eventID, eventType string) error
	MarkProcessed(ctx context.Context, provider, eventID string, processingErr error) error
}
