package ports

import (
	"context"
	"errors"
	"fmt"
)

type TransferInput struct {
	AmountCents        int64
	Currency           string
	DestinationAccount string
	IdempotencyKey     string
	Metadata           map[string]string
}

type TransferResult struct {
	ID     string
	Status string
}

type RefundInput struct {
	PaymentIntentID string
	AmountCents     int64
	Reason          string
	IdempotencyKey  string
	Metadata        map[string]string
}

type RefundResult struct {
	ID     string
	Status string
}

// PaymentProcessor is the narrow slice of the payment provider the core uses.
type PaymentProcessor interface {
	CreateTransfer(ctx context.Context, in TransferInput) (*TransferResult, error)
	CreateRefund(ctx context.Context, in RefundInput) (*RefundResult, error)
	// PayoutTransferIDs resolves the transfer ids whose funds a connected
	// account payout drew on, for best-effort earnings linkage.
	PayoutTransferIDs(ctx context.Context, payoutID, connectAccountID string) ([]string, error)
}

// ProcessorError is the translated form of the provider SDK's error shapes.
// Raw SDK errors never cross the adapter boundary.
type ProcessorError struct {
	Code    string
	Type    string
	Message string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error %s (%s): %s", e.Code, e.Type, e.Message)
}

const ProcessorCodeInsufficientBalance = "balance_insufficient"

// IsInsufficientBalance reports whether err is the platform-balance shortfall
// class of failure, which is retried when the balance recovers rather than
// escalated.
func IsInsufficientBalance(err error) bool {
	var pe *ProcessorError
	return errors.As(err, &pe) && pe.Code == ProcessorCodeInsufficientBalance
}
