package ports

import (
	"context"

	"github.com/ndmitriev/BookPay/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus transitions the booking to the target status only when the
	// stored status is one of from. Returns false when no row matched, so the
	// caller can re-fetch and diagnose the race.
	UpdateStatus(ctx context.Context, id string, to domain.BookingStatus, from ...domain.BookingStatus) (bool, error)
	// SetPaid records the payment-intent reference together with the
	// accepted -> paid transition.
	SetPaid(ctx context.Context, id, paymentIntentID string) (bool, error)
	// SetCanceled transitions to a canceled status and records the acting
	// party and reason for audit.
	SetCanceled(ctx context.Context, id string, to domain.BookingStatus, canceledBy, reason string, from ...domain.BookingStatus) (bool, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error)
}
