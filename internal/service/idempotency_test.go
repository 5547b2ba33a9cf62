package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func completedRecord(t *testing.T, v any, expiresAt time.Time) *domain.IdempotencyRecord {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	now := time.Now().UTC()
	return &domain.IdempotencyRecord{
		Key:         "k",
		Operation:   "op",
		Result:      raw,
		CompletedAt: &now,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}
}

func TestDeriveIdempotencyKey_Deterministic(t *testing.T) {
	k1 := DeriveIdempotencyKey("booking.create", "cust-1", "svc-1", map[string]string{"a": "1"})
	k2 := DeriveIdempotencyKey("booking.create", "cust-1", "svc-1", map[string]string{"a": "1"})
	k3 := DeriveIdempotencyKey("booking.create", "cust-1", "svc-1", map[string]string{"a": "2"})
	k4 := DeriveIdempotencyKey("booking.cancel", "cust-1", "svc-1", map[string]string{"a": "1"})

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)
	assert.Len(t, k1, 64)
}

func TestRunIdempotent_FirstExecution(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepo(t)
	g := NewIdempotencyGuard(repo, time.Hour, newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "k").Return(nil, nil)
	repo.EXPECT().Insert(mock.Anything, "k", "op", mock.Anything).Return(true, nil)
	repo.EXPECT().StoreResult(mock.Anything, "k", mock.Anything).Return(nil)

	var runs int
	res, err := RunIdempotent(context.Background(), g, "k", "op", func(context.Context) (string, error) {
		runs++
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", res)
	assert.Equal(t, 1, runs)
}

func TestRunIdempotent_ReplaysStoredResult(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepo(t)
	g := NewIdempotencyGuard(repo, time.Hour, newTestLogger(t))

	rec := completedRecord(t, "stored", time.Now().UTC().Add(time.Hour))
	repo.EXPECT().Get(mock.Anything, "k").Return(rec, nil)

	res, err := RunIdempotent(context.Background(), g, "k", "op", func(context.Context) (string, error) {
		t.Fatal("fn must not run on replay")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "stored", res)
}

func TestRunIdempotent_ExpiredRecordRunsAgain(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepo(t)
	g := NewIdempotencyGuard(repo, time.Hour, newTestLogger(t))

	rec := completedRecord(t, "stale", time.Now().UTC().Add(-time.Minute))
	repo.EXPECT().Get(mock.Anything, "k").Return(rec, nil)
	repo.EXPECT().Insert(mock.Anything, "k", "op", mock.Anything).Return(true, nil)
	repo.EXPECT().StoreResult(mock.Anything, "k", mock.Anything).Return(nil)

	res, err := RunIdempotent(context.Background(), g, "k", "op", func(context.Context) (string, error) {
		return "fresh", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh", res)
}

func TestRunIdempotent_ConcurrentDuplicateRejected(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepo(t)
	g := NewIdempotencyGuard(repo, time.Hour, newTestLogger(t))

	// Claim lost and the winner has not stored a result yet.
	pending := &domain.IdempotencyRecord{
		Key:       "k",
		Operation: "op",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	repo.EXPECT().Get(mock.Anything, "k").Return(nil, nil).Once()
	repo.EXPECT().Insert(mock.Anything, "k", "op", mock.Anything).Return(false, nil)
	repo.EXPECT().Get(mock.Anything, "k").Return(pending, nil).Once()

	_, err := RunIdempotent(context.Background(), g, "k", "op", func(context.Context) (string, error) {
		t.Fatal("fn must not run without the claim")
		return "", nil
	})

	assert.ErrorIs(t, err, domain.ErrOperationInFlight)
}

func TestRunIdempotent_LostRaceReplaysWinner(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepo(t)
	g := NewIdempotencyGuard(repo, time.Hour, newTestLogger(t))

	rec := completedRecord(t, "winner", time.Now().UTC().Add(time.Hour))
	repo.EXPECT().Get(mock.Anything, "k").Return(nil, nil).Once()
	repo.EXPECT().Insert(mock.Anything, "k", "op", mock.Anything).Return(false, nil)
	repo.EXPECT().Get(mock.Anything, "k").Return(rec, nil).Once()

	res, err := RunIdempotent(context.Background(), g, "k", "op", func(context.Context) (string, error) {
		t.Fatal("fn must not run without the claim")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "winner", res)
}

func TestRunIdempotent_FailureReleasesKey(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepo(t)
	g := NewIdempotencyGuard(repo, time.Hour, newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "k").Return(nil, nil)
	repo.EXPECT().Insert(mock.Anything, "k", "op", mock.Anything).Return(true, nil)
	repo.EXPECT().Delete(mock.Anything, "k").Return(nil)

	boom := errors.New("downstream failure")
	_, err := RunIdempotent(context.Background(), g, "k", "op", func(context.Context) (string, error) {
		return "", boom
	})

	assert.ErrorIs(t, err, boom)
}
