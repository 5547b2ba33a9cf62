package domain

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrEarningsNotFound = errors.New("earnings not found")
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidAmount      = errors.New("invalid monetary amount")
	ErrMissingEarnings    = errors.New("earnings record missing for payout-eligible booking")
	ErrRefundFailed       = errors.New("refund failed")
	ErrCancelWindowClosed = errors.New("booking can no longer be cancelled by the provider")
)

var (
	ErrForbidden         = errors.New("actor is not permitted to perform this action")
	ErrOperationInFlight = errors.New("operation already in progress, retry later")
	ErrServiceInactive   = errors.New("service is not available for booking")
	ErrDuplicateEvent    = errors.New("webhook event already processed")
	ErrValidation        = errors.New("validation error")
)
