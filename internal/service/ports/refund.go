package ports

import (
	"context"

	"github.com/ndmitriev/BookPay/internal/domain"
)

type RefundRepo interface {
	Create(ctx context.Context, r *domain.Refund) error
	SetOutcome(ctx context.Context, id string, status domain.RefundStatus, externalID *string) error
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Refund, error)
}
