package domain

import "time"

type RefundStatus string

const (
	RefundStatusProcessing RefundStatus = "processing"
	RefundStatusCompleted  RefundStatus = "completed"
	RefundStatusFailed     RefundStatus = "failed"
)

// Refund records one refund attempt for a booking. The row is written in
// processing state before the external call is issued, then updated with the
// outcome, so intent is auditable even when the processor call is lost.
type Refund struct {
	ID          string       `json:"id"`
	BookingID   string       `json:"booking_id"`
	AmountCents int64        `json:"amount_cents"`
	Reason      string       `json:"reason"`
	Status      RefundStatus `json:"status"`
	ExternalID  *string      `json:"external_id,omitempty"`
	ProcessedBy string       `json:"processed_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
