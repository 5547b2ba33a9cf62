package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending             BookingStatus = "pending"
	BookingStatusAccepted            BookingStatus = "accepted"
	BookingStatusDeclined            BookingStatus = "declined"
	BookingStatusPaid                BookingStatus = "paid"
	BookingStatusCompletedByProvider BookingStatus = "completed_by_provider"
	BookingStatusCompleted           BookingStatus = "completed"
	BookingStatusCanceledCustomer    BookingStatus = "canceled_customer"
	BookingStatusCanceledProvider    BookingStatus = "canceled_provider"
	BookingStatusDisputed            BookingStatus = "disputed"
	BookingStatusRefunded            BookingStatus = "refunded"
)

type Booking struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customer_id"`
	ProviderID      string        `json:"provider_id"`
	ServiceID       string        `json:"service_id"`
	Status          BookingStatus `json:"status"`
	PriceCents      int64         `json:"price_cents"` // snapshot taken at creation, never updated
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty"`
	CanceledBy      *string       `json:"canceled_by,omitempty"`
	CancelReason    *string       `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	CustomerID  string
	ServiceID   string
	ScheduledAt *time.Time
}

type RespondAction string

const (
	RespondActionAccept  RespondAction = "accept"
	RespondActionDecline RespondAction = "decline"
	RespondActionCancel  RespondAction = "cancel"
)
