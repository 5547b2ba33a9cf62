package ports

import "context"

// Notifier dispatches user-facing notifications. Delivery is fire-and-forget:
// implementations log failures and never surface them to the caller.
type Notifier interface {
	Notify(ctx context.Context, userID, event string, payload map[string]any, idempotencyKey string)
}

// OpsAlerter raises operational alerts that need a human, such as payout
// failures the retry loop cannot recover on its own.
type OpsAlerter interface {
	PayoutFailed(ctx context.Context, providerID, earningsID string, amountCents int64, reason string)
}
