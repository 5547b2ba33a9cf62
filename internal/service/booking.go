package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PlatformConfig is the injected process-level configuration the money paths
// read. It is fixed at startup, never read from ambient globals.
type PlatformConfig struct {
	FeeBps          int64
	GSTPercent      int64
	Currency        string
	PayoutsDisabled bool
}

type BookingService struct {
	bookings  ports.BookingRepo
	catalog   ports.ServiceCatalogRepo
	providers ports.ProviderRepo
	earnings  ports.EarningsRepo
	refunds   ports.RefundRepo
	processor ports.PaymentProcessor
	notifier  ports.Notifier
	guard     *IdempotencyGuard
	cfg       PlatformConfig
	logger    logger.Logger
}

func NewBookingService(
	bookings ports.BookingRepo,
	catalog ports.ServiceCatalogRepo,
	providers ports.ProviderRepo,
	earnings ports.EarningsRepo,
	refunds ports.RefundRepo,
	processor ports.PaymentProcessor,
	notifier ports.Notifier,
	guard *IdempotencyGuard,
	cfg PlatformConfig,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		catalog:   catalog,
		providers: providers,
		earnings:  earnings,
		refunds:   refunds,
		processor: processor,
		notifier:  notifier,
		guard:     guard,
		cfg:       cfg,
		logger:    logger,
	}
}

// Create books a service for a customer, snapshotting the current price.
// Duplicate submissions with the same payload return the first booking.
func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	if in.CustomerID == "" || in.ServiceID == "" {
		return nil, fmt.Errorf("%w: customer_id and service_id are required", domain.ErrValidation)
	}

	key := DeriveIdempotencyKey("booking.create", in.CustomerID, in.ServiceID, in)
	return RunIdempotent(ctx, s.guard, key, "booking.create", func(ctx context.Context) (*domain.Booking, error) {
		svc, err := s.catalog.GetByID(ctx, in.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("get service: %w", err)
		}
		if !svc.Active {
			return nil, domain.ErrServiceInactive
		}

		now := time.Now().UTC()
		b := &domain.Booking{
			ID:          uuid.New().String(),
			CustomerID:  in.CustomerID,
			ProviderID:  svc.ProviderID,
			ServiceID:   svc.ID,
			Status:      domain.BookingStatusPending,
			PriceCents:  svc.PriceCents,
			ScheduledAt: in.ScheduledAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err = s.bookings.Create(ctx, b); err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}

		s.logger.Info("booking created",
			logger.String("booking_id", b.ID),
			logger.String("customer_id", b.CustomerID),
			logger.String("provider_id", b.ProviderID),
			logger.Int64("price_cents", b.PriceCents),
		)

		go s.notifier.Notify(context.WithoutCancel(ctx), b.ProviderID, "booking.created",
			map[string]any{"booking_id": b.ID, "service_id": b.ServiceID}, b.ID+":created")

		return b, nil
	})
}

// Respond lets the provider accept or decline a pending booking. Cancel
// requests route through Cancel so the refund rules apply.
func (s *BookingService) Respond(ctx context.Context, bookingID, actorID string, action domain.RespondAction, reason string) (*domain.Booking, error) {
	if action == domain.RespondActionCancel {
		res, err := s.Cancel(ctx, bookingID, actorID, reason)
		if err != nil {
			return nil, err
		}
		return res.Booking, nil
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.ProviderID != actorID {
		return nil, domain.ErrForbidden
	}

	var target domain.BookingStatus
	switch action {
	case domain.RespondActionAccept:
		target = domain.BookingStatusAccepted
	case domain.RespondActionDecline:
		target = domain.BookingStatusDeclined
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, action)
	}

	return s.transition(ctx, b, target, func(ctx context.Context) (bool, error) {
		return s.bookings.UpdateStatus(ctx, b.ID, target, b.Status)
	}, b.CustomerID, "booking."+string(target))
}

// MarkPaid records the captured payment against an accepted booking.
func (s *BookingService) MarkPaid(ctx context.Context, bookingID, customerID, paymentIntentID string) (*domain.Booking, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("%w: payment_intent_id is required", domain.ErrValidation)
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}

	return s.transition(ctx, b, domain.BookingStatusPaid, func(ctx context.Context) (bool, error) {
		return s.bookings.SetPaid(ctx, b.ID, paymentIntentID)
	}, b.ProviderID, "booking.paid")
}

// MarkCompletedByProvider records the provider's completion claim and writes
// the escrow ledger entry in held state.
func (s *BookingService) MarkCompletedByProvider(ctx context.Context, bookingID, providerID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.ProviderID != providerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.transition(ctx, b, domain.BookingStatusCompletedByProvider, func(ctx context.Context) (bool, error) {
		return s.bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusCompletedByProvider, b.Status)
	}, b.CustomerID, "booking.completed_by_provider")
	if err != nil {
		return nil, err
	}

	if _, err := holdEarnings(ctx, s.catalog, s.earnings, s.cfg, updated); err != nil {
		// The completion claim stands; the settlement path repairs a missing
		// ledger row before transferring.
		s.logger.Error("failed to create held earnings",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}

	return updated, nil
}

// holdEarnings upserts the escrow ledger row for a booking the provider has
// marked complete. Shared with the settlement repair path.
func holdEarnings(ctx context.Context, catalog ports.ServiceCatalogRepo, earnings ports.EarningsRepo, cfg PlatformConfig, b *domain.Booking) (*domain.Earnings, error) {
	svc, err := catalog.GetByID(ctx, b.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	breakdown, err := domain.ComputeEarnings(b.PriceCents, svc.ChargesGST, cfg.FeeBps, cfg.GSTPercent)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row, err := earnings.Upsert(ctx, &domain.Earnings{
		ID:               uuid.New().String(),
		BookingID:        b.ID,
		ProviderID:       b.ProviderID,
		GrossCents:       breakdown.GrossCents,
		PlatformFeeCents: breakdown.PlatformFeeCents,
		GSTCents:         breakdown.GSTCents,
		NetCents:         breakdown.NetCents,
		Status:           domain.EarningsStatusHeld,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert earnings: %w", err)
	}
	return row, nil
}

type CancelResult struct {
	Booking  *domain.Booking `json:"booking"`
	Refunded bool            `json:"refunded"`
}

// Cancel processes a cancellation by either party. A paid booking is refunded
// before its status changes: if the refund call fails the booking stays paid
// and the caller gets ErrRefundFailed, because money has not moved.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID, reason string) (*CancelResult, error) {
	key := DeriveIdempotencyKey("booking.cancel", actorID, bookingID, nil)
	return RunIdempotent(ctx, s.guard, key, "booking.cancel", func(ctx context.Context) (*CancelResult, error) {
		return s.cancel(ctx, bookingID, actorID, reason, key)
	})
}

func (s *BookingService) cancel(ctx context.Context, bookingID, actorID, reason, idemKey string) (*CancelResult, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var target domain.BookingStatus
	var counterpart string
	switch actorID {
	case b.CustomerID:
		target = domain.BookingStatusCanceledCustomer
		counterpart = b.ProviderID
	case b.ProviderID:
		target = domain.BookingStatusCanceledProvider
		counterpart = b.CustomerID
	default:
		return nil, domain.ErrForbidden
	}

	current := domain.NormalizeStatus(string(b.Status))
	if current == target {
		return &CancelResult{Booking: b, Refunded: false}, nil
	}
	if err = domain.AssertTransition(current, target); err != nil {
		return nil, err
	}

	wasPaid := current == domain.BookingStatusPaid
	if wasPaid && target == domain.BookingStatusCanceledProvider &&
		b.ScheduledAt != nil && b.ScheduledAt.Before(time.Now().UTC()) {
		return nil, domain.ErrCancelWindowClosed
	}

	if wasPaid {
		if err = s.refundPayment(ctx, b, actorID, reason, idemKey); err != nil {
			return nil, err
		}
	}

	updated, err := s.bookings.SetCanceled(ctx, b.ID, target, actorID, reason, b.Status)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if !updated {
		// Concurrent writer got there first; re-read and report reality.
		b, err = s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return nil, fmt.Errorf("re-read booking: %w", err)
		}
		if domain.NormalizeStatus(string(b.Status)) == target {
			return &CancelResult{Booking: b, Refunded: wasPaid}, nil
		}
		return nil, fmt.Errorf("%w: %q -> %q", domain.ErrInvalidTransition, b.Status, target)
	}

	if wasPaid {
		if err := s.earnings.MarkRefunded(ctx, b.ID); err != nil {
			s.logger.Error("failed to mark earnings refunded",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("canceled_by", actorID),
		logger.String("status", string(target)),
	)

	go s.notifier.Notify(context.WithoutCancel(ctx), counterpart, "booking.canceled",
		map[string]any{"booking_id": b.ID, "reason": reason, "refunded": wasPaid}, idemKey)

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("re-read booking: %w", err)
	}
	return &CancelResult{Booking: b, Refunded: wasPaid}, nil
}

// refundPayment writes the refund record before issuing the external call, so
// intent is auditable, then records the outcome.
func (s *BookingService) refundPayment(ctx context.Context, b *domain.Booking, actorID, reason, idemKey string) error {
	if b.PaymentIntentID == nil || *b.PaymentIntentID == "" {
		s.logger.Error("paid booking has no payment intent reference",
			logger.String("booking_id", b.ID),
		)
		return fmt.Errorf("%w: no payment reference on booking %s", domain.ErrRefundFailed, b.ID)
	}

	now := time.Now().UTC()
	refund := &domain.Refund{
		ID:          uuid.New().String(),
		BookingID:   b.ID,
		AmountCents: b.PriceCents,
		Reason:      reason,
		Status:      domain.RefundStatusProcessing,
		ProcessedBy: actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.refunds.Create(ctx, refund); err != nil {
		// A unique-index collision means another actor's refund for this
		// booking is already in flight; surface it as a retryable conflict
		// rather than issuing a second external refund.
		if errors.Is(err, domain.ErrOperationInFlight) {
			return err
		}
		return fmt.Errorf("create refund record: %w", err)
	}

	res, err := s.processor.CreateRefund(ctx, ports.RefundInput{
		PaymentIntentID: *b.PaymentIntentID,
		AmountCents:     b.PriceCents,
		Reason:          reason,
		IdempotencyKey:  idemKey + ":refund",
		Metadata:        map[string]string{"booking_id": b.ID, "refund_id": refund.ID},
	})
	if err != nil {
		if outErr := s.refunds.SetOutcome(ctx, refund.ID, domain.RefundStatusFailed, nil); outErr != nil {
			s.logger.Error("failed to record refund failure",
				logger.String("refund_id", refund.ID),
				logger.String("error", outErr.Error()),
			)
		}
		s.logger.Error("refund call failed",
			logger.String("booking_id", b.ID),
			logger.String("refund_id", refund.ID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: booking %s", domain.ErrRefundFailed, b.ID)
	}

	if err := s.refunds.SetOutcome(ctx, refund.ID, domain.RefundStatusCompleted, &res.ID); err != nil {
		s.logger.Error("failed to record refund success",
			logger.String("refund_id", refund.ID),
			logger.String("external_id", res.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("refund issued",
		logger.String("booking_id", b.ID),
		logger.String("refund_id", refund.ID),
		logger.String("external_id", res.ID),
		logger.Int64("amount_cents", b.PriceCents),
	)
	return nil
}

// Dispute lets the customer escalate a paid or provider-completed booking.
func (s *BookingService) Dispute(ctx context.Context, bookingID, customerID, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}

	return s.transition(ctx, b, domain.BookingStatusDisputed, func(ctx context.Context) (bool, error) {
		return s.bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusDisputed, b.Status)
	}, b.ProviderID, "booking.disputed")
}

// AdminRefund resolves a paid booking by refunding the customer in full,
// moving the booking to the refunded terminal state. Used by dispute
// resolution tooling.
func (s *BookingService) AdminRefund(ctx context.Context, bookingID, adminID, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = domain.AssertTransition(domain.NormalizeStatus(string(b.Status)), domain.BookingStatusRefunded); err != nil {
		return nil, err
	}

	key := DeriveIdempotencyKey("booking.admin_refund", adminID, bookingID, nil)
	if err = s.refundPayment(ctx, b, adminID, reason, key); err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, b, domain.BookingStatusRefunded, func(ctx context.Context) (bool, error) {
		return s.bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusRefunded, b.Status)
	}, b.CustomerID, "booking.refunded")
	if err != nil {
		return nil, err
	}

	if err := s.earnings.MarkRefunded(ctx, b.ID); err != nil {
		s.logger.Error("failed to mark earnings refunded",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
	return updated, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

func (s *BookingService) ListByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error) {
	return s.bookings.ListByProvider(ctx, providerID)
}

// transition applies a validated status change via apply, diagnosing races by
// re-reading when the conditional write matched nothing. Reaching the target
// through a concurrent writer counts as success. Stored statuses may carry
// legacy spellings from imported records; they are canonicalized before the
// transition check, while the conditional write inside apply matches the raw
// stored value.
func (s *BookingService) transition(
	ctx context.Context,
	b *domain.Booking,
	target domain.BookingStatus,
	apply func(context.Context) (bool, error),
	notifyUserID, event string,
) (*domain.Booking, error) {
	current := domain.NormalizeStatus(string(b.Status))
	if current == target {
		return b, nil
	}
	if err := domain.AssertTransition(current, target); err != nil {
		return nil, err
	}

	updated, err := apply(ctx)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	fresh, err := s.bookings.GetByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("re-read booking: %w", err)
	}
	if !updated && domain.NormalizeStatus(string(fresh.Status)) != target {
		return nil, fmt.Errorf("%w: %q -> %q", domain.ErrInvalidTransition, fresh.Status, target)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("from", string(current)),
		logger.String("to", string(target)),
	)

	go s.notifier.Notify(context.WithoutCancel(ctx), notifyUserID, event,
		map[string]any{"booking_id": b.ID}, b.ID+":"+string(target))

	return fresh, nil
}
