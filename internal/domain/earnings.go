package domain

import (
	"fmt"
	"time"
)

type EarningsStatus string

const (
	EarningsStatusHeld           EarningsStatus = "held"
	EarningsStatusAwaitingPayout EarningsStatus = "awaiting_payout"
	EarningsStatusTransferred    EarningsStatus = "transferred"
	EarningsStatusPaidOut        EarningsStatus = "paid_out"
	EarningsStatusRefunded       EarningsStatus = "refunded"
	EarningsStatusFailed         EarningsStatus = "failed"
)

// TransferableStatuses is the canonical set of earnings statuses from which a
// transfer may still be attempted. Transferred and paid_out short-circuit to
// idempotent success; refunded and failed never transfer.
var TransferableStatuses = []EarningsStatus{EarningsStatusHeld, EarningsStatusAwaitingPayout}

// Earnings is the escrow ledger entry, one row per booking.
type Earnings struct {
	ID               string         `json:"id"`
	BookingID        string         `json:"booking_id"`
	ProviderID       string         `json:"provider_id"`
	GrossCents       int64          `json:"gross_cents"`
	PlatformFeeCents int64          `json:"platform_fee_cents"`
	GSTCents         int64          `json:"gst_cents"`
	NetCents         int64          `json:"net_cents"`
	Status           EarningsStatus `json:"status"`
	TransferID       *string        `json:"transfer_id,omitempty"`
	TransferredAt    *time.Time     `json:"transferred_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// EarningsBreakdown is the gross/fee/tax/net split for one booking price.
type EarningsBreakdown struct {
	GrossCents       int64 `json:"gross_cents"`
	PlatformFeeCents int64 `json:"platform_fee_cents"`
	GSTCents         int64 `json:"gst_cents"`
	NetCents         int64 `json:"net_cents"`
}

// ComputeEarnings splits a gross booking price (minor currency units) into the
// platform fee, the GST component and the provider's net.
//
// The fee rounds up, in the platform's favour, so fractional cents are never
// under-collected. GST uses the inclusive-tax formula gross*rate/(100+rate):
// it is a reporting pass-through and does not reduce the provider's net, which
// is always gross minus fee.
func ComputeEarnings(grossCents int64, chargesGST bool, feeBps, gstPercent int64) (EarningsBreakdown, error) {
	if grossCents <= 0 {
		return EarningsBreakdown{}, fmt.Errorf("%w: gross %d", ErrInvalidAmount, grossCents)
	}
	if feeBps < 0 || feeBps > 10000 {
		return EarningsBreakdown{}, fmt.Errorf("%w: fee rate %d bps", ErrInvalidAmount, feeBps)
	}
	if gstPercent < 0 || gstPercent > 100 {
		return EarningsBreakdown{}, fmt.Errorf("%w: gst rate %d%%", ErrInvalidAmount, gstPercent)
	}

	fee := (grossCents*feeBps + 9999) / 10000

	var gst int64
	if chargesGST && gstPercent > 0 {
		gst = grossCents * gstPercent / (100 + gstPercent)
	}

	return EarningsBreakdown{
		GrossCents:       grossCents,
		PlatformFeeCents: fee,
		GSTCents:         gst,
		NetCents:         grossCents - fee,
	}, nil
}
