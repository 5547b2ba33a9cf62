package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type payoutRetrier interface {
	RetryQueued(ctx context.Context) (int, error)
}

// Scheduler periodically retries queued payouts: earnings whose transfer was
// deferred because of an insufficient platform balance or a provider account
// that was not yet payout-ready.
type Scheduler struct {
	settlement payoutRetrier
	interval   time.Duration
	logger     logger.Logger
}

func New(
	settlement payoutRetrier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		settlement: settlement,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("payout scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("payout scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	transferred, err := s.settlement.RetryQueued(ctx)
	if err != nil {
		s.logger.Error("payout retry pass failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if transferred > 0 {
		s.logger.Info("queued payouts transferred",
			logger.Int("count", transferred),
		)
	}
}
