package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertTransition_AllowedPairs(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusAccepted},
		{BookingStatusPending, BookingStatusDeclined},
		{BookingStatusPending, BookingStatusCanceledCustomer},
		{BookingStatusAccepted, BookingStatusPaid},
		{BookingStatusAccepted, BookingStatusCanceledCustomer},
		{BookingStatusAccepted, BookingStatusCanceledProvider},
		{BookingStatusPaid, BookingStatusCompletedByProvider},
		{BookingStatusPaid, BookingStatusDisputed},
		{BookingStatusPaid, BookingStatusCanceledCustomer},
		{BookingStatusPaid, BookingStatusCanceledProvider},
		{BookingStatusPaid, BookingStatusRefunded},
		{BookingStatusCompletedByProvider, BookingStatusCompleted},
		{BookingStatusCompletedByProvider, BookingStatusDisputed},
		{BookingStatusDisputed, BookingStatusRefunded},
		{BookingStatusDisputed, BookingStatusCompleted},
	}

	for _, pair := range allowed {
		assert.NoError(t, AssertTransition(pair.from, pair.to), "%s -> %s", pair.from, pair.to)
	}
}

func TestAssertTransition_RejectsEverythingElse(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending, BookingStatusAccepted, BookingStatusDeclined,
		BookingStatusPaid, BookingStatusCompletedByProvider, BookingStatusCompleted,
		BookingStatusCanceledCustomer, BookingStatusCanceledProvider,
		BookingStatusDisputed, BookingStatusRefunded,
	}

	for _, from := range all {
		for _, to := range all {
			if AssertTransition(from, to) == nil {
				continue
			}
			err := AssertTransition(from, to)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
			assert.Contains(t, err.Error(), string(to))
		}
	}
}

func TestAssertTransition_TerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusDeclined, BookingStatusCompleted,
		BookingStatusCanceledCustomer, BookingStatusCanceledProvider,
		BookingStatusRefunded,
	} {
		assert.True(t, IsTerminal(s), "%s", s)
		err := AssertTransition(s, BookingStatusPending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	// disputed is resolved by admin action out of band, not via the table
	assert.False(t, IsTerminal(BookingStatusDisputed))
}

func TestAssertTransition_UnknownStatus(t *testing.T) {
	err := AssertTransition(BookingStatus("bogus"), BookingStatusAccepted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]BookingStatus{
		"confirmed":             BookingStatusAccepted,
		"rejected":              BookingStatusDeclined,
		"complete":              BookingStatusCompleted,
		"provider_completed":    BookingStatusCompletedByProvider,
		"cancelled_customer":    BookingStatusCanceledCustomer,
		"cancelled_by_provider": BookingStatusCanceledProvider,
		"in_dispute":            BookingStatusDisputed,
		"pending":               BookingStatusPending,
		"paid":                  BookingStatusPaid,
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeStatus(raw), "%s", raw)
	}

	// unknown strings pass through for AssertTransition to reject
	assert.Equal(t, BookingStatus("garbage"), NormalizeStatus("garbage"))
}
