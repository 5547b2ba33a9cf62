package dto

import (
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customer_id"`
	ProviderID      string  `json:"provider_id"`
	ServiceID       string  `json:"service_id"`
	Status          string  `json:"status"`
	PriceCents      int64   `json:"price_cents"`
	ScheduledAt     *string `json:"scheduled_at,omitempty"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	CanceledBy      *string `json:"canceled_by,omitempty"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type CancelResponse struct {
	Booking  BookingResponse `json:"booking"`
	Refunded bool            `json:"refunded"`
}

type ConfirmResponse struct {
	Booking BookingResponse `json:"booking"`
	Payout  string          `json:"payout"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ProviderID:      b.ProviderID,
		ServiceID:       b.ServiceID,
		Status:          string(b.Status),
		PriceCents:      b.PriceCents,
		ScheduledAt:     formatTimePtr(b.ScheduledAt),
		PaymentIntentID: b.PaymentIntentID,
		CanceledBy:      b.CanceledBy,
		CancelReason:    b.CancelReason,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCancelResponse(res *service.CancelResult) CancelResponse {
	return CancelResponse{
		Booking:  ToBookingResponse(res.Booking),
		Refunded: res.Refunded,
	}
}

func ToConfirmResponse(res *service.ConfirmResult) ConfirmResponse {
	return ConfirmResponse{
		Booking: ToBookingResponse(res.Booking),
		Payout:  string(res.Payout),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
