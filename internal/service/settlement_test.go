package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/service/ports"
	"github.com/ndmitriev/BookPay/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settlementFixture struct {
	bookings  *mocks.MockBookingRepo
	providers *mocks.MockProviderRepo
	catalog   *mocks.MockServiceCatalogRepo
	earnings  *mocks.MockEarningsRepo
	processor *mocks.MockPaymentProcessor
	notifier  *mocks.MockNotifier
	alerter   *mocks.MockOpsAlerter
	svc       *SettlementService
}

func newSettlementFixture(t *testing.T, cfg PlatformConfig) *settlementFixture {
	t.Helper()
	f := &settlementFixture{
		bookings:  mocks.NewMockBookingRepo(t),
		providers: mocks.NewMockProviderRepo(t),
		catalog:   mocks.NewMockServiceCatalogRepo(t),
		earnings:  mocks.NewMockEarningsRepo(t),
		processor: mocks.NewMockPaymentProcessor(t),
		notifier:  mocks.NewMockNotifier(t),
		alerter:   mocks.NewMockOpsAlerter(t),
	}
	f.svc = NewSettlementService(
		f.bookings, f.providers, f.catalog, f.earnings,
		f.processor, f.notifier, f.alerter, cfg, newTestLogger(t),
	)
	return f
}

func defaultPlatformConfig() PlatformConfig {
	return PlatformConfig{FeeBps: 1000, GSTPercent: 15, Currency: "nzd"}
}

func heldEarnings() *domain.Earnings {
	now := time.Now().UTC()
	return &domain.Earnings{
		ID:               "earn-1",
		BookingID:        "book-1",
		ProviderID:       "prov-1",
		GrossCents:       10000,
		PlatformFeeCents: 1000,
		GSTCents:         1304,
		NetCents:         9000,
		Status:           domain.EarningsStatusHeld,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func payoutReadyProvider() *domain.Provider {
	return &domain.Provider{
		ID:               "prov-1",
		Name:             "Ana's Garden Care",
		ConnectAccountID: strptr("acct_1"),
		ChargesEnabled:   true,
		PayoutsEnabled:   true,
		KYCStatus:        domain.KYCStatusVerified,
	}
}

func TestSettlementService_ConfirmCompletion_Transfers(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	claimed := testBooking(domain.BookingStatusCompletedByProvider)
	completed := testBooking(domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(claimed, nil).Once()
	f.bookings.EXPECT().UpdateStatus(mock.Anything, "book-1", domain.BookingStatusCompleted, domain.BookingStatusCompletedByProvider).Return(true, nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(completed, nil).Once()

	f.earnings.EXPECT().GetByBookingID(mock.Anything, "book-1").Return(heldEarnings(), nil)
	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, "earn-1").Return(true, nil)
	f.providers.EXPECT().GetByID(mock.Anything, "prov-1").Return(payoutReadyProvider(), nil)
	f.processor.EXPECT().CreateTransfer(mock.Anything, mock.MatchedBy(func(in ports.TransferInput) bool {
		return in.AmountCents == 9000 &&
			in.Currency == "nzd" &&
			in.DestinationAccount == "acct_1" &&
			in.IdempotencyKey == "earnings-transfer-earn-1"
	})).Return(&ports.TransferResult{ID: "tr_1", Status: "created"}, nil)
	f.earnings.EXPECT().MarkTransferred(mock.Anything, "earn-1", "tr_1").Return(true, nil)
	f.notifier.EXPECT().Notify(mock.Anything, "prov-1", "payout.transferred", mock.Anything, mock.Anything).Return()

	res, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "cust-1")

	require.NoError(t, err)
	assert.Equal(t, PayoutOutcomeTransferred, res.Payout)
	assert.Equal(t, domain.BookingStatusCompleted, res.Booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_ConfirmCompletion_WrongCustomer(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(testBooking(domain.BookingStatusCompletedByProvider), nil)

	_, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "stranger")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSettlementService_ConfirmCompletion_PendingRejected(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(testBooking(domain.BookingStatusPending), nil)

	_, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "cust-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSettlementService_ConfirmCompletion_SecondConfirmAlreadyPaid(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	completed := testBooking(domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(completed, nil).Twice()

	e := heldEarnings()
	e.Status = domain.EarningsStatusTransferred
	e.TransferID = strptr("tr_1")
	f.earnings.EXPECT().GetByBookingID(mock.Anything, "book-1").Return(e, nil)

	res, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "cust-1")

	require.NoError(t, err)
	assert.Equal(t, PayoutOutcomeAlreadyPaid, res.Payout)
	// No processor call was expected: the transfer must not repeat.
}

func TestSettlementService_ConfirmCompletion_RepairsMissingEarnings(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	completed := testBooking(domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(completed, nil).Twice()

	f.earnings.EXPECT().GetByBookingID(mock.Anything, "book-1").Return(nil, domain.ErrEarningsNotFound)
	f.catalog.EXPECT().GetByID(mock.Anything, "svc-1").Return(testService(), nil)
	repaired := heldEarnings()
	f.earnings.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(e *domain.Earnings) bool {
		return e.BookingID == "book-1" && e.NetCents == 9000 && e.Status == domain.EarningsStatusHeld
	})).Return(repaired, nil)

	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, "earn-1").Return(true, nil)
	f.providers.EXPECT().GetByID(mock.Anything, "prov-1").Return(payoutReadyProvider(), nil)
	f.processor.EXPECT().CreateTransfer(mock.Anything, mock.Anything).Return(&ports.TransferResult{ID: "tr_2", Status: "created"}, nil)
	f.earnings.EXPECT().MarkTransferred(mock.Anything, "earn-1", "tr_2").Return(true, nil)
	f.notifier.EXPECT().Notify(mock.Anything, "prov-1", "payout.transferred", mock.Anything, mock.Anything).Return()

	res, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "cust-1")

	require.NoError(t, err)
	assert.Equal(t, PayoutOutcomeTransferred, res.Payout)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_ConfirmCompletion_UnrepairableEarnings(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	completed := testBooking(domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(completed, nil).Twice()

	f.earnings.EXPECT().GetByBookingID(mock.Anything, "book-1").Return(nil, domain.ErrEarningsNotFound)
	f.catalog.EXPECT().GetByID(mock.Anything, "svc-1").Return(nil, domain.ErrServiceNotFound)

	_, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "cust-1")

	// The booking is already completed; the caller retries the confirm.
	assert.ErrorIs(t, err, domain.ErrMissingEarnings)
}

func TestSettlementService_ConfirmCompletion_RefundedEarningsSkipped(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	completed := testBooking(domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, "book-1").Return(completed, nil).Twice()

	e := heldEarnings()
	e.Status = domain.EarningsStatusRefunded
	f.earnings.EXPECT().GetByBookingID(mock.Anything, "book-1").Return(e, nil)

	res, err := f.svc.ConfirmCompletion(context.Background(), "book-1", "cust-1")

	require.NoError(t, err)
	assert.Equal(t, PayoutOutcomeSkipped, res.Payout)
}

func TestSettlementService_Transfer_InsufficientBalanceQueues(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, "earn-1").Return(true, nil)
	f.providers.EXPECT().GetByID(mock.Anything, "prov-1").Return(payoutReadyProvider(), nil)
	f.processor.EXPECT().CreateTransfer(mock.Anything, mock.Anything).Return(nil, &ports.ProcessorError{
		Code:    ports.ProcessorCodeInsufficientBalance,
		Type:    "invalid_request_error",
		Message: "insufficient funds",
	})

	outcome := f.svc.Transfer(context.Background(), heldEarnings())

	// No alert expected: the balance recovers and the queue retries.
	assert.Equal(t, PayoutOutcomeQueued, outcome)
}

func TestSettlementService_Transfer_FailureAlertsAndQueues(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, "earn-1").Return(true, nil)
	f.providers.EXPECT().GetByID(mock.Anything, "prov-1").Return(payoutReadyProvider(), nil)
	f.processor.EXPECT().CreateTransfer(mock.Anything, mock.Anything).Return(nil, errors.New("account cannot receive transfers"))
	f.alerter.EXPECT().PayoutFailed(mock.Anything, "prov-1", "earn-1", int64(9000), mock.Anything).Return()

	outcome := f.svc.Transfer(context.Background(), heldEarnings())

	assert.Equal(t, PayoutOutcomeQueued, outcome)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_Transfer_ProviderNotReadyQueues(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, "earn-1").Return(true, nil)
	p := payoutReadyProvider()
	p.PayoutsEnabled = false
	f.providers.EXPECT().GetByID(mock.Anything, "prov-1").Return(p, nil)

	outcome := f.svc.Transfer(context.Background(), heldEarnings())

	assert.Equal(t, PayoutOutcomeQueued, outcome)
}

func TestSettlementService_Transfer_PayoutsDisabledQueues(t *testing.T) {
	cfg := defaultPlatformConfig()
	cfg.PayoutsDisabled = true
	f := newSettlementFixture(t, cfg)

	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, "earn-1").Return(true, nil)

	outcome := f.svc.Transfer(context.Background(), heldEarnings())

	assert.Equal(t, PayoutOutcomeQueued, outcome)
}

func TestSettlementService_Transfer_ExistingTransferShortCircuits(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	e := heldEarnings()
	e.TransferID = strptr("tr_old")

	outcome := f.svc.Transfer(context.Background(), e)

	assert.Equal(t, PayoutOutcomeAlreadyPaid, outcome)
}

func TestSettlementService_RetryQueued(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	first := heldEarnings()
	first.Status = domain.EarningsStatusAwaitingPayout
	second := heldEarnings()
	second.ID = "earn-2"
	second.BookingID = "book-2"
	second.Status = domain.EarningsStatusAwaitingPayout
	f.earnings.EXPECT().ListAwaitingPayout(mock.Anything, 100).Return([]*domain.Earnings{first, second}, nil)

	f.earnings.EXPECT().MarkAwaitingPayout(mock.Anything, mock.Anything).Return(true, nil).Twice()
	f.providers.EXPECT().GetByID(mock.Anything, "prov-1").Return(payoutReadyProvider(), nil).Twice()
	f.processor.EXPECT().CreateTransfer(mock.Anything, mock.Anything).Return(&ports.TransferResult{ID: "tr_9", Status: "created"}, nil).Twice()
	f.earnings.EXPECT().MarkTransferred(mock.Anything, mock.Anything, "tr_9").Return(true, nil).Twice()
	f.notifier.EXPECT().Notify(mock.Anything, "prov-1", "payout.transferred", mock.Anything, mock.Anything).Return().Twice()

	n, err := f.svc.RetryQueued(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_RetryQueued_ListFailure(t *testing.T) {
	f := newSettlementFixture(t, defaultPlatformConfig())

	f.earnings.EXPECT().ListAwaitingPayout(mock.Anything, 100).Return(nil, errors.New("db down"))

	_, err := f.svc.RetryQueued(context.Background())

	assert.Error(t, err)
}
