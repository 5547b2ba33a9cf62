package ports

import (
	"context"

	"github.com/ndmitriev/BookPay/internal/domain"
)

type EarningsRepo interface {
	// Upsert inserts the earnings row keyed by booking id, or returns the
	// existing row untouched when one is already there. Safe under retries.
	Upsert(ctx context.Context, e *domain.Earnings) (*domain.Earnings, error)
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Earnings, error)
	// MarkAwaitingPayout moves a held row into the transfer queue. Rows
	// already awaiting payout count as a match so re-entry is idempotent.
	MarkAwaitingPayout(ctx context.Context, id string) (bool, error)
	// MarkTransferred stores the transfer reference. Only rows still in a
	// transferable status match, which keeps transfer creation at-most-once.
	MarkTransferred(ctx context.Context, id, transferID string) (bool, error)
	MarkRefunded(ctx context.Context, bookingID string) error
	// MarkFailedByTransferID reacts to a reversed transfer.
	MarkFailedByTransferID(ctx context.Context, transferID string) (bool, error)
	// MarkPaidOutByTransferIDs links a processor payout to previously
	// transferred rows. Returns the number of rows linked.
	MarkPaidOutByTransferIDs(ctx context.Context, transferIDs []string) (int64, error)
	ListAwaitingPayout(ctx context.Context, limit int) ([]*domain.Earnings, error)
}
