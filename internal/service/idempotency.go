package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// IdempotencyGuard makes externally-triggered mutations safe to retry: the
// first execution under a key runs and its result is stored, repeats within
// the TTL replay the stored result, and concurrent duplicates are rejected.
// The unique-constraint insert in the repository is the mutual exclusion
// primitive, so the guard is correct across server processes.
type IdempotencyGuard struct {
	repo   ports.IdempotencyRepo
	ttl    time.Duration
	logger logger.Logger
}

func NewIdempotencyGuard(repo ports.IdempotencyRepo, ttl time.Duration, logger logger.Logger) *IdempotencyGuard {
	return &IdempotencyGuard{repo: repo, ttl: ttl, logger: logger}
}

// DeriveIdempotencyKey builds a deterministic key from the operation name, the
// acting party, the target and the request fields that matter for equality.
func DeriveIdempotencyKey(operation, actorID, targetID string, payload any) string {
	raw, _ := json.Marshal(payload)
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", operation, actorID, targetID, raw)
	return hex.EncodeToString(h.Sum(nil))
}

// RunIdempotent executes fn at most once per key within the guard's TTL. The
// result type must round-trip through JSON, which every guarded operation's
// result already does.
func RunIdempotent[T any](ctx context.Context, g *IdempotencyGuard, key, operation string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	rec, err := g.repo.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("idempotency lookup: %w", err)
	}
	if res, ok, err := replayStored[T](rec); ok {
		return res, err
	}

	claimed, err := g.repo.Insert(ctx, key, operation, time.Now().UTC().Add(g.ttl))
	if err != nil {
		return zero, fmt.Errorf("idempotency claim: %w", err)
	}
	if !claimed {
		// Lost the race. Either the winner finished (replay its result) or it
		// is still running (tell the caller to retry).
		rec, err = g.repo.Get(ctx, key)
		if err != nil {
			return zero, fmt.Errorf("idempotency re-read: %w", err)
		}
		if res, ok, err := replayStored[T](rec); ok {
			g.logger.Info("idempotent replay", logger.String("operation", operation))
			return res, err
		}
		return zero, domain.ErrOperationInFlight
	}

	res, err := fn(ctx)
	if err != nil {
		// Release the key so the client can retry the failed operation.
		if delErr := g.repo.Delete(ctx, key); delErr != nil {
			g.logger.Error("failed to release idempotency key",
				logger.String("operation", operation),
				logger.String("error", delErr.Error()),
			)
		}
		return zero, err
	}

	raw, marshalErr := json.Marshal(res)
	if marshalErr != nil {
		return zero, fmt.Errorf("marshal idempotent result: %w", marshalErr)
	}
	if storeErr := g.repo.StoreResult(ctx, key, raw); storeErr != nil {
		// The operation itself succeeded; a replay miss is the lesser harm.
		g.logger.Error("failed to store idempotent result",
			logger.String("operation", operation),
			logger.String("error", storeErr.Error()),
		)
	}

	return res, nil
}

func replayStored[T any](rec *domain.IdempotencyRecord) (T, bool, error) {
	var zero T
	if rec == nil || rec.CompletedAt == nil || time.Now().UTC().After(rec.ExpiresAt) {
		return zero, false, nil
	}
	var res T
	if err := json.Unmarshal(rec.Result, &res); err != nil {
		return zero, true, fmt.Errorf("unmarshal stored result: %w", err)
	}
	return res, true, nil
}
