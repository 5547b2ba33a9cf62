package domain

import "fmt"

// transitions is the full set of allowed booking status changes. Statuses
// absent from the map are terminal. The temporal and actor-specific rules for
// cancelling a paid booking are enforced at the service layer, on top of this
// table.
var transitions = map[BookingStatus]map[BookingStatus]struct{}{
	BookingStatusPending: {
		BookingStatusAccepted:         {},
		BookingStatusDeclined:         {},
		BookingStatusCanceledCustomer: {},
	},
	BookingStatusAccepted: {
		BookingStatusPaid:             {},
		BookingStatusCanceledCustomer: {},
		BookingStatusCanceledProvider: {},
	},
	BookingStatusPaid: {
		BookingStatusCompletedByProvider: {},
		BookingStatusDisputed:            {},
		BookingStatusCanceledCustomer:    {},
		BookingStatusCanceledProvider:    {},
		BookingStatusRefunded:            {},
	},
	BookingStatusCompletedByProvider: {
		BookingStatusCompleted: {},
		BookingStatusDisputed:  {},
	},
	// Disputes are resolved by admin action: refund the customer or release
	// the completion in the provider's favour.
	BookingStatusDisputed: {
		BookingStatusRefunded:  {},
		BookingStatusCompleted: {},
	},
}

var terminalStatuses = map[BookingStatus]struct{}{
	BookingStatusDeclined:         {},
	BookingStatusCompleted:        {},
	BookingStatusCanceledCustomer: {},
	BookingStatusCanceledProvider: {},
	BookingStatusRefunded:         {},
}

// statusAliases canonicalizes legacy status spellings that still arrive from
// older clients and imported records. Aliases never reach storage: callers
// normalize at the boundary, the stored enum holds canonical values only.
var statusAliases = map[string]BookingStatus{
	"confirmed":             BookingStatusAccepted,
	"rejected":              BookingStatusDeclined,
	"complete":              BookingStatusCompleted,
	"completed_provider":    BookingStatusCompletedByProvider,
	"provider_completed":    BookingStatusCompletedByProvider,
	"cancelled_customer":    BookingStatusCanceledCustomer,
	"canceled_by_customer":  BookingStatusCanceledCustomer,
	"cancelled_by_customer": BookingStatusCanceledCustomer,
	"cancelled_provider":    BookingStatusCanceledProvider,
	"canceled_by_provider":  BookingStatusCanceledProvider,
	"cancelled_by_provider": BookingStatusCanceledProvider,
	"in_dispute":            BookingStatusDisputed,
}

// NormalizeStatus maps a raw status string to its canonical value. Unknown
// strings pass through unchanged so that AssertTransition can reject them.
func NormalizeStatus(raw string) BookingStatus {
	if canonical, ok := statusAliases[raw]; ok {
		return canonical
	}
	return BookingStatus(raw)
}

// AssertTransition validates a requested status change against the transition
// table. Every booking mutation must pass through it before writing status.
func AssertTransition(current, requested BookingStatus) error {
	allowed, ok := transitions[current]
	if !ok {
		return fmt.Errorf("%w: %q is terminal, requested %q", ErrInvalidTransition, current, requested)
	}
	if _, ok := allowed[requested]; !ok {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, current, requested)
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed from s.
// Disputed is intentionally not terminal: admins resolve it out of band.
func IsTerminal(s BookingStatus) bool {
	_, ok := terminalStatuses[s]
	return ok
}
