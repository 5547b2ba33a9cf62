package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndmitriev/BookPay/internal/service/ports"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/balancetransaction"
	"github.com/stripe/stripe-go/v82/refund"
	"github.com/stripe/stripe-go/v82/transfer"
	"github.com/wb-go/wbf/logger"
)

// StripeProcessor adapts the Stripe SDK to the narrow PaymentProcessor port.
// SDK error shapes are translated to ports.ProcessorError here and never leak
// past this package.
type StripeProcessor struct {
	logger logger.Logger
}

func NewStripeProcessor(secretKey string, logger logger.Logger) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{logger: logger}
}

func (p *StripeProcessor) CreateTransfer(ctx context.Context, in ports.TransferInput) (*ports.TransferResult, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(in.AmountCents),
		Currency:    stripe.String(in.Currency),
		Destination: stripe.String(in.DestinationAccount),
		Metadata:    in.Metadata,
	}
	params.Context = ctx
	params.SetIdempotencyKey(in.IdempotencyKey)

	t, err := transfer.New(params)
	if err != nil {
		return nil, p.translate("create transfer", err)
	}
	return &ports.TransferResult{ID: t.ID, Status: "created"}, nil
}

func (p *StripeProcessor) CreateRefund(ctx context.Context, in ports.RefundInput) (*ports.RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(in.PaymentIntentID),
		Amount:        stripe.Int64(in.AmountCents),
		Metadata:      in.Metadata,
	}
	params.Context = ctx
	params.SetIdempotencyKey(in.IdempotencyKey)
	// Stripe accepts a fixed reason vocabulary; the free-form reason travels
	// in metadata instead.
	params.Reason = stripe.String(string(stripe.RefundReasonRequestedByCustomer))
	if in.Reason != "" {
		params.AddMetadata("reason", in.Reason)
	}

	r, err := refund.New(params)
	if err != nil {
		return nil, p.translate("create refund", err)
	}
	return &ports.RefundResult{ID: r.ID, Status: string(r.Status)}, nil
}

// PayoutTransferIDs walks the balance transactions behind a connected-account
// payout and collects the source transfer ids, for linking the payout back to
// earnings rows.
func (p *StripeProcessor) PayoutTransferIDs(ctx context.Context, payoutID, connectAccountID string) ([]string, error) {
	params := &stripe.BalanceTransactionListParams{
		Payout: stripe.String(payoutID),
	}
	params.Context = ctx
	params.AddExpand("data.source")
	if connectAccountID != "" {
		params.SetStripeAccount(connectAccountID)
	}

	var ids []string
	it := balancetransaction.List(params)
	for it.Next() {
		bt := it.BalanceTransaction()
		if bt.Source != nil && bt.Source.Transfer != nil {
			ids = append(ids, bt.Source.Transfer.ID)
		}
	}
	if err := it.Err(); err != nil {
		return nil, p.translate("list balance transactions", err)
	}
	return ids, nil
}

func (p *StripeProcessor) translate(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		p.logger.Error("stripe call failed",
			logger.String("op", op),
			logger.String("code", string(stripeErr.Code)),
			logger.String("request_id", stripeErr.RequestID),
		)
		return &ports.ProcessorError{
			Code:    string(stripeErr.Code),
			Type:    string(stripeErr.Type),
			Message: stripeErr.Msg,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
