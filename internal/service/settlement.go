package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PayoutOutcome tells the caller what happened to the provider's money when a
// booking was confirmed. None of these values fail the confirmation itself.
type PayoutOutcome string

const (
	PayoutOutcomeTransferred PayoutOutcome = "transferred"
	PayoutOutcomeQueued      PayoutOutcome = "queued"
	PayoutOutcomeSkipped     PayoutOutcome = "skipped"
	PayoutOutcomeAlreadyPaid PayoutOutcome = "already_paid"
)

type ConfirmResult struct {
	Booking *domain.Booking `json:"booking"`
	Payout  PayoutOutcome   `json:"payout"`
}

// SettlementService moves held funds to providers. Booking completion is
// synchronous and must succeed; the transfer is best-effort and falls back to
// the retry queue, so processor downtime never blocks the customer.
type SettlementService struct {
	bookings  ports.BookingRepo
	providers ports.ProviderRepo
	catalog   ports.ServiceCatalogRepo
	earnings  ports.EarningsRepo
	processor ports.PaymentProcessor
	notifier  ports.Notifier
	alerter   ports.OpsAlerter
	cfg       PlatformConfig
	logger    logger.Logger
}

func NewSettlementService(
	bookings ports.BookingRepo,
	providers ports.ProviderRepo,
	catalog ports.ServiceCatalogRepo,
	earnings ports.EarningsRepo,
	processor ports.PaymentProcessor,
	notifier ports.Notifier,
	alerter ports.OpsAlerter,
	cfg PlatformConfig,
	logger logger.Logger,
) *SettlementService {
	return &SettlementService{
		bookings:  bookings,
		providers: providers,
		catalog:   catalog,
		earnings:  earnings,
		processor: processor,
		notifier:  notifier,
		alerter:   alerter,
		cfg:       cfg,
		logger:    logger,
	}
}

// ConfirmCompletion handles the customer confirming the provider's completion
// claim. The booking is completed first, unconditionally once the transition
// validates; everything downstream of that is payout plumbing that degrades to
// a queued outcome instead of failing the request.
func (s *SettlementService) ConfirmCompletion(ctx context.Context, bookingID, customerID string) (*ConfirmResult, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}

	if current := domain.NormalizeStatus(string(b.Status)); current != domain.BookingStatusCompleted {
		if err = domain.AssertTransition(current, domain.BookingStatusCompleted); err != nil {
			return nil, err
		}
		if current != domain.BookingStatusCompletedByProvider {
			// Disputed bookings exit the dispute through admin resolution,
			// never through the customer's confirm.
			return nil, fmt.Errorf("%w: %q -> %q", domain.ErrInvalidTransition, b.Status, domain.BookingStatusCompleted)
		}

		updated, err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted, b.Status)
		if err != nil {
			return nil, fmt.Errorf("complete booking: %w", err)
		}
		if !updated {
			b, err = s.bookings.GetByID(ctx, bookingID)
			if err != nil {
				return nil, fmt.Errorf("re-read booking: %w", err)
			}
			if domain.NormalizeStatus(string(b.Status)) != domain.BookingStatusCompleted {
				return nil, fmt.Errorf("%w: %q -> %q", domain.ErrInvalidTransition, b.Status, domain.BookingStatusCompleted)
			}
		} else {
			s.logger.Info("booking completed",
				logger.String("booking_id", b.ID),
				logger.String("customer_id", customerID),
			)
		}
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("re-read booking: %w", err)
	}

	outcome, err := s.settle(ctx, b)
	if err != nil {
		return nil, err
	}
	return &ConfirmResult{Booking: b, Payout: outcome}, nil
}

// settle drives the escrow row for a completed booking towards paid out.
// Transfer problems degrade to queued or skipped; the only error it returns is
// a missing earnings row that could not be repaired, which the caller surfaces
// as a retryable conflict on an already-completed booking.
func (s *SettlementService) settle(ctx context.Context, b *domain.Booking) (PayoutOutcome, error) {
	e, err := s.earnings.GetByBookingID(ctx, b.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrEarningsNotFound) {
			s.logger.Error("failed to read earnings",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			return PayoutOutcomeQueued, nil
		}
		// Repair path: the row should have been written when the provider
		// marked completion.
		e, err = holdEarnings(ctx, s.catalog, s.earnings, s.cfg, b)
		if err != nil {
			s.logger.Error("failed to repair missing earnings",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			return "", fmt.Errorf("%w: booking %s", domain.ErrMissingEarnings, b.ID)
		}
		s.logger.Warn("repaired missing earnings row",
			logger.String("booking_id", b.ID),
			logger.String("earnings_id", e.ID),
		)
	}

	switch e.Status {
	case domain.EarningsStatusTransferred, domain.EarningsStatusPaidOut:
		return PayoutOutcomeAlreadyPaid, nil
	case domain.EarningsStatusRefunded, domain.EarningsStatusFailed:
		// The booking completion stands; the money cannot move.
		s.logger.Warn("payout skipped for non-transferable earnings",
			logger.String("earnings_id", e.ID),
			logger.String("status", string(e.Status)),
		)
		return PayoutOutcomeSkipped, nil
	}

	return s.Transfer(ctx, e), nil
}

// Transfer attempts the external transfer for a transferable earnings row.
// The idempotency key is derived from the earnings id, so retries and
// concurrent confirmations create at most one transfer per row.
func (s *SettlementService) Transfer(ctx context.Context, e *domain.Earnings) PayoutOutcome {
	if e.TransferID != nil && *e.TransferID != "" {
		return PayoutOutcomeAlreadyPaid
	}
	if e.NetCents <= 0 {
		s.logger.Error("earnings net is not positive, refusing transfer",
			logger.String("earnings_id", e.ID),
			logger.Int64("net_cents", e.NetCents),
		)
		return PayoutOutcomeSkipped
	}

	if _, err := s.earnings.MarkAwaitingPayout(ctx, e.ID); err != nil {
		s.logger.Error("failed to queue earnings for payout",
			logger.String("earnings_id", e.ID),
			logger.String("error", err.Error()),
		)
		return PayoutOutcomeQueued
	}

	if s.cfg.PayoutsDisabled {
		s.logger.Warn("payouts disabled by configuration, transfer queued",
			logger.String("earnings_id", e.ID),
		)
		return PayoutOutcomeQueued
	}

	provider, err := s.providers.GetByID(ctx, e.ProviderID)
	if err != nil {
		s.logger.Error("failed to resolve provider for transfer",
			logger.String("earnings_id", e.ID),
			logger.String("provider_id", e.ProviderID),
			logger.String("error", err.Error()),
		)
		return PayoutOutcomeQueued
	}
	if provider.ConnectAccountID == nil || *provider.ConnectAccountID == "" || !provider.PayoutsEnabled {
		s.logger.Warn("provider not ready for payouts, transfer queued",
			logger.String("earnings_id", e.ID),
			logger.String("provider_id", e.ProviderID),
			logger.Bool("payouts_enabled", provider.PayoutsEnabled),
		)
		return PayoutOutcomeQueued
	}

	res, err := s.processor.CreateTransfer(ctx, ports.TransferInput{
		AmountCents:        e.NetCents,
		Currency:           s.cfg.Currency,
		DestinationAccount: *provider.ConnectAccountID,
		IdempotencyKey:     "earnings-transfer-" + e.ID,
		Metadata: map[string]string{
			"earnings_id": e.ID,
			"booking_id":  e.BookingID,
			"provider_id": e.ProviderID,
		},
	})
	if err != nil {
		// Insufficient platform balance clears on its own and retries from
		// the queue; anything else gets an ops alert as well.
		if ports.IsInsufficientBalance(err) {
			s.logger.Warn("transfer deferred on insufficient balance",
				logger.String("earnings_id", e.ID),
			)
		} else {
			s.logger.Error("transfer failed",
				logger.String("earnings_id", e.ID),
				logger.String("error", err.Error()),
			)
			go s.alerter.PayoutFailed(context.WithoutCancel(ctx), e.ProviderID, e.ID, e.NetCents, err.Error())
		}
		return PayoutOutcomeQueued
	}

	marked, err := s.earnings.MarkTransferred(ctx, e.ID, res.ID)
	if err != nil || !marked {
		// The transfer exists; the row will be reconciled by the payout
		// webhook linkage. Loud log, nothing else to do inline.
		s.logger.Error("transfer created but earnings row not updated",
			logger.String("earnings_id", e.ID),
			logger.String("transfer_id", res.ID),
		)
		return PayoutOutcomeTransferred
	}

	s.logger.Info("earnings transferred",
		logger.String("earnings_id", e.ID),
		logger.String("transfer_id", res.ID),
		logger.Int64("net_cents", e.NetCents),
	)

	go s.notifier.Notify(context.WithoutCancel(ctx), e.ProviderID, "payout.transferred",
		map[string]any{"booking_id": e.BookingID, "amount_cents": e.NetCents}, "transfer:"+e.ID)

	return PayoutOutcomeTransferred
}

// RetryQueued re-attempts transfers for earnings stuck in the payout queue.
// Called by the scheduler and after balance-recovery webhook events.
func (s *SettlementService) RetryQueued(ctx context.Context) (int, error) {
	rows, err := s.earnings.ListAwaitingPayout(ctx, 100)
	if err != nil {
		return 0, fmt.Errorf("list queued earnings: %w", err)
	}

	var transferred int
	for _, e := range rows {
		if outcome := s.Transfer(ctx, e); outcome == PayoutOutcomeTransferred || outcome == PayoutOutcomeAlreadyPaid {
			transferred++
		}
		// Stop burning the queue when the context is gone.
		if ctx.Err() != nil {
			return transferred, ctx.Err()
		}
	}

	if len(rows) > 0 {
		s.logger.Info("payout retry pass finished",
			logger.Int("queued", len(rows)),
			logger.Int("transferred", transferred),
			logger.String("at", time.Now().UTC().Format(time.RFC3339)),
		)
	}
	return transferred, nil
}
