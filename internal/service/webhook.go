package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service/ports"
	"github.com/stripe/stripe-go/v82"
	"github.com/wb-go/wbf/logger"
)

type payoutRetrier interface {
	RetryQueued(ctx context.Context) (int, error)
}

// WebhookService converges local state with the payment processor and the
// identity-verification provider. Events arrive duplicated and out of order;
// every handler is a dedup-guarded upsert towards the external system's view.
type WebhookService struct {
	providers ports.ProviderRepo
	earnings  ports.EarningsRepo
	payouts   ports.PayoutRepo
	events    ports.WebhookEventRepo
	processor ports.PaymentProcessor
	retrier   payoutRetrier
	notifier  ports.Notifier
	alerter   ports.OpsAlerter
	logger    logger.Logger
}

func NewWebhookService(
	providers ports.ProviderRepo,
	earnings ports.EarningsRepo,
	payouts ports.PayoutRepo,
	events ports.WebhookEventRepo,
	processor ports.PaymentProcessor,
	retrier payoutRetrier,
	notifier ports.Notifier,
	alerter ports.OpsAlerter,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		providers: providers,
		earnings:  earnings,
		payouts:   payouts,
		events:    events,
		processor: processor,
		retrier:   retrier,
		notifier:  notifier,
		alerter:   alerter,
		logger:    logger,
	}
}

// HandleConnectEvent processes one verified processor event. A returned error
// means the event could not be applied; the transport layer still acknowledges
// it, this is for logging only.
func (s *WebhookService) HandleConnectEvent(ctx context.Context, event stripe.Event) error {
	if err := s.events.Insert(ctx, "stripe", event.ID, string(event.Type)); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			s.logger.Debug("duplicate processor event skipped",
				logger.String("event_id", event.ID),
			)
			return nil
		}
		return fmt.Errorf("record event: %w", err)
	}

	var procErr error
	switch event.Type {
	case "account.updated":
		procErr = s.handleAccountUpdated(ctx, event)
	case "capability.updated":
		procErr = s.handleCapabilityUpdated(ctx, event)
	case "payout.paid", "payout.failed":
		procErr = s.handlePayoutEvent(ctx, event)
	case "transfer.reversed":
		procErr = s.handleTransferReversed(ctx, event)
	case "balance.available":
		// Platform balance recovered; drain the payout queue.
		if _, err := s.retrier.RetryQueued(ctx); err != nil {
			procErr = fmt.Errorf("retry queued payouts: %w", err)
		}
	default:
		s.logger.Debug("processor event ignored",
			logger.String("event_id", event.ID),
			logger.String("type", string(event.Type)),
		)
	}

	if err := s.events.MarkProcessed(ctx, "stripe", event.ID, procErr); err != nil {
		s.logger.Error("failed to mark event processed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}
	return procErr
}

func (s *WebhookService) handleAccountUpdated(ctx context.Context, event stripe.Event) error {
	var acct stripe.Account
	if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
		return fmt.Errorf("unmarshal account: %w", err)
	}

	p, err := s.resolveProvider(ctx, acct.ID, acct.Metadata["provider_id"])
	if err != nil {
		return err
	}

	changed, err := s.providers.UpdateConnectFlags(ctx, p.ID, acct.ChargesEnabled, acct.PayoutsEnabled)
	if err != nil {
		return fmt.Errorf("update connect flags: %w", err)
	}
	if !changed {
		return nil
	}

	s.logger.Info("provider connect flags updated",
		logger.String("provider_id", p.ID),
		logger.Bool("charges_enabled", acct.ChargesEnabled),
		logger.Bool("payouts_enabled", acct.PayoutsEnabled),
	)

	go s.notifier.Notify(context.WithoutCancel(ctx), p.ID, "account.updated",
		map[string]any{
			"charges_enabled": acct.ChargesEnabled,
			"payouts_enabled": acct.PayoutsEnabled,
		}, event.ID)

	if acct.PayoutsEnabled && !p.PayoutsEnabled {
		// Newly enabled payouts may unblock queued transfers.
		if _, err := s.retrier.RetryQueued(ctx); err != nil {
			s.logger.Error("payout retry after account update failed",
				logger.String("provider_id", p.ID),
				logger.String("error", err.Error()),
			)
		}
	}
	return nil
}

func (s *WebhookService) handleCapabilityUpdated(ctx context.Context, event stripe.Event) error {
	var capability stripe.Capability
	if err := json.Unmarshal(event.Data.Raw, &capability); err != nil {
		return fmt.Errorf("unmarshal capability: %w", err)
	}

	var accountID string
	if capability.Account != nil {
		accountID = capability.Account.ID
	}
	if accountID == "" {
		accountID = event.Account
	}

	p, err := s.resolveProvider(ctx, accountID, "")
	if err != nil {
		return err
	}

	charges, payouts := p.ChargesEnabled, p.PayoutsEnabled
	active := capability.Status == stripe.CapabilityStatusActive
	switch capability.ID {
	case "card_payments":
		charges = active
	case "transfers":
		payouts = active
	default:
		return nil
	}

	changed, err := s.providers.UpdateConnectFlags(ctx, p.ID, charges, payouts)
	if err != nil {
		return fmt.Errorf("update connect flags: %w", err)
	}
	if changed {
		go s.notifier.Notify(context.WithoutCancel(ctx), p.ID, "account.updated",
			map[string]any{"charges_enabled": charges, "payouts_enabled": payouts}, event.ID)
	}
	return nil
}

func (s *WebhookService) handlePayoutEvent(ctx context.Context, event stripe.Event) error {
	var po stripe.Payout
	if err := json.Unmarshal(event.Data.Raw, &po); err != nil {
		return fmt.Errorf("unmarshal payout: %w", err)
	}

	var providerID *string
	if event.Account != "" {
		if p, err := s.providers.GetByConnectAccountID(ctx, event.Account); err == nil {
			providerID = &p.ID
		}
	}

	row := &domain.Payout{
		ID:          uuid.New().String(),
		ExternalID:  po.ID,
		ProviderID:  providerID,
		AmountCents: po.Amount,
		Currency:    string(po.Currency),
		Status:      mapPayoutStatus(po.Status),
	}
	if po.ArrivalDate > 0 {
		t := time.Unix(po.ArrivalDate, 0).UTC()
		row.ArrivalDate = &t
	}
	if po.FailureCode != "" {
		code := string(po.FailureCode)
		row.FailureCode = &code
	}

	if err := s.payouts.UpsertByExternalID(ctx, row); err != nil {
		return fmt.Errorf("upsert payout: %w", err)
	}

	if event.Type == "payout.failed" {
		s.logger.Warn("provider payout failed",
			logger.String("payout_id", po.ID),
			logger.String("failure_code", string(po.FailureCode)),
		)
		if providerID != nil {
			go s.alerter.PayoutFailed(context.WithoutCancel(ctx), *providerID, po.ID, po.Amount, string(po.FailureCode))
		}
		return nil
	}

	// Best-effort linkage of the payout to transferred earnings rows via the
	// underlying ledger transactions. A failure here never blocks the ack.
	transferIDs, err := s.processor.PayoutTransferIDs(ctx, po.ID, event.Account)
	if err != nil {
		s.logger.Warn("could not resolve payout transfers",
			logger.String("payout_id", po.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	if len(transferIDs) == 0 {
		return nil
	}

	linked, err := s.earnings.MarkPaidOutByTransferIDs(ctx, transferIDs)
	if err != nil {
		s.logger.Warn("could not link payout to earnings",
			logger.String("payout_id", po.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	s.logger.Info("payout linked to earnings",
		logger.String("payout_id", po.ID),
		logger.Int64("rows", linked),
	)
	return nil
}

func (s *WebhookService) handleTransferReversed(ctx context.Context, event stripe.Event) error {
	var tr stripe.Transfer
	if err := json.Unmarshal(event.Data.Raw, &tr); err != nil {
		return fmt.Errorf("unmarshal transfer: %w", err)
	}

	marked, err := s.earnings.MarkFailedByTransferID(ctx, tr.ID)
	if err != nil {
		return fmt.Errorf("mark earnings failed: %w", err)
	}
	if marked {
		s.logger.Error("transfer reversed, earnings marked failed",
			logger.String("transfer_id", tr.ID),
		)
	}
	return nil
}

func (s *WebhookService) resolveProvider(ctx context.Context, accountID, metadataProviderID string) (*domain.Provider, error) {
	if accountID != "" {
		p, err := s.providers.GetByConnectAccountID(ctx, accountID)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrProviderNotFound) {
			return nil, fmt.Errorf("resolve provider by account: %w", err)
		}
	}
	if metadataProviderID != "" {
		p, err := s.providers.GetByID(ctx, metadataProviderID)
		if err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: account %q", domain.ErrProviderNotFound, accountID)
}

func mapPayoutStatus(s stripe.PayoutStatus) domain.PayoutStatus {
	switch s {
	case stripe.PayoutStatusPaid:
		return domain.PayoutStatusPaid
	case stripe.PayoutStatusInTransit:
		return domain.PayoutStatusInTransit
	case stripe.PayoutStatusFailed:
		return domain.PayoutStatusFailed
	case stripe.PayoutStatusCanceled:
		return domain.PayoutStatusCanceled
	default:
		return domain.PayoutStatusPending
	}
}

// IdentityEvent is one applicant review-status notification, already
// signature-verified by the transport layer.
type IdentityEvent struct {
	EventID      string
	ApplicantID  string
	ProviderID   string
	ReviewStatus string
	ReviewResult string
}

// HandleIdentityEvent applies a KYC review-status change to the provider the
// applicant maps to. Duplicate deliveries leave flags and notifications alone.
func (s *WebhookService) HandleIdentityEvent(ctx context.Context, ev IdentityEvent) error {
	if err := s.events.Insert(ctx, "identity", ev.EventID, ev.ReviewStatus); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			s.logger.Debug("duplicate identity event skipped",
				logger.String("event_id", ev.EventID),
			)
			return nil
		}
		return fmt.Errorf("record event: %w", err)
	}

	var procErr error
	if p, err := s.providers.GetByID(ctx, ev.ProviderID); err != nil {
		procErr = fmt.Errorf("resolve provider %q: %w", ev.ProviderID, err)
	} else {
		status := MapReviewStatus(ev.ReviewStatus, ev.ReviewResult)
		changed, err := s.providers.UpdateKYCStatus(ctx, p.ID, status)
		switch {
		case err != nil:
			procErr = fmt.Errorf("update kyc status: %w", err)
		case changed:
			s.logger.Info("provider kyc status updated",
				logger.String("provider_id", p.ID),
				logger.String("status", string(status)),
			)
			go s.notifier.Notify(context.WithoutCancel(ctx), p.ID, "account.kyc_updated",
				map[string]any{"status": string(status)}, ev.EventID)
		}
	}

	if err := s.events.MarkProcessed(ctx, "identity", ev.EventID, procErr); err != nil {
		s.logger.Error("failed to mark event processed",
			logger.String("event_id", ev.EventID),
			logger.String("error", err.Error()),
		)
	}
	return procErr
}

// MapReviewStatus translates raw verification-provider review states into the
// local KYC enum.
func MapReviewStatus(status, result string) domain.KYCStatus {
	switch status {
	case "init":
		return domain.KYCStatusNotStarted
	case "prechecked":
		return domain.KYCStatusInProgress
	case "pending", "queued", "onHold":
		return domain.KYCStatusPendingReview
	case "completed":
		if result == "GREEN" {
			return domain.KYCStatusVerified
		}
		return domain.KYCStatusRejected
	default:
		return domain.KYCStatusInProgress
	}
}
