package domain

import "time"

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusInTransit PayoutStatus = "in_transit"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusFailed    PayoutStatus = "failed"
	PayoutStatusCanceled  PayoutStatus = "canceled"
)

// Payout mirrors a processor payout object, upserted from webhook events and
// keyed by the external payout id. Transfer linkage is best-effort.
type Payout struct {
	ID          string       `json:"id"`
	ExternalID  string       `json:"external_id"`
	ProviderID  *string      `json:"provider_id,omitempty"`
	AmountCents int64        `json:"amount_cents"`
	Currency    string       `json:"currency"`
	Status      PayoutStatus `json:"status"`
	ArrivalDate *time.Time   `json:"arrival_date,omitempty"`
	FailureCode *string      `json:"failure_code,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
