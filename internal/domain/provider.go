package domain

import "time"

type KYCStatus string

const (
	KYCStatusNotStarted    KYCStatus = "not_started"
	KYCStatusInProgress    KYCStatus = "in_progress"
	KYCStatusPendingReview KYCStatus = "pending_review"
	KYCStatusVerified      KYCStatus = "verified"
	KYCStatusRejected      KYCStatus = "rejected"
)

// Provider carries the connect-account state the settlement path reads. The
// flags are mutated only by the webhook reconciler: the processor is the
// source of truth for them.
type Provider struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ConnectAccountID *string   `json:"connect_account_id,omitempty"`
	ChargesEnabled   bool      `json:"charges_enabled"`
	PayoutsEnabled   bool      `json:"payouts_enabled"`
	KYCStatus        KYCStatus `json:"kyc_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Service is a catalog entry offered by a provider. Its price is copied onto
// the booking at creation time and later price edits do not affect it.
type Service struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	ChargesGST bool      `json:"charges_gst"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}
