package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/handler/dto"
	hmocks "github.com/ndmitriev/BookPay/internal/handler/mocks"
	"github.com/ndmitriev/BookPay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockSettlementSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	settlementSvc := hmocks.NewMockSettlementSvc(t)

	h := NewHandler(bookingSvc, settlementSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/respond", h.RespondBooking)
		api.POST("/bookings/:id/paid", h.MarkPaid)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/dispute", h.DisputeBooking)
		api.POST("/admin/bookings/:id/refund", h.AdminRefundBooking)
		api.GET("/customers/:id/bookings", h.ListCustomerBookings)
		api.GET("/providers/:id/bookings", h.ListProviderBookings)
	}

	return bookingSvc, settlementSvc, r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:         uuid.New().String(),
		CustomerID: uuid.New().String(),
		ProviderID: uuid.New().String(),
		ServiceID:  uuid.New().String(),
		Status:     status,
		PriceCents: 10000,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusPending)
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := postJSON(t, r, "/api/bookings", dto.CreateBookingRequest{
		CustomerID: booking.CustomerID,
		ServiceID:  booking.ServiceID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(10000), resp.PriceCents)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/bookings", map[string]string{"customer_id": "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidScheduledAt(t *testing.T) {
	_, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/bookings", dto.CreateBookingRequest{
		CustomerID:  uuid.New().String(),
		ServiceID:   uuid.New().String(),
		ScheduledAt: "tomorrow-ish",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusAccepted)
	bookingSvc.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RespondBooking_Accept(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusAccepted)
	bookingSvc.EXPECT().Respond(mock.Anything, booking.ID, booking.ProviderID, domain.RespondActionAccept, "").Return(booking, nil)

	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/respond", dto.RespondRequest{
		ProviderID: booking.ProviderID,
		Action:     "accept",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RespondBooking_UnknownAction(t *testing.T) {
	_, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/bookings/"+uuid.New().String()+"/respond", dto.RespondRequest{
		ProviderID: uuid.New().String(),
		Action:     "maybe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RespondBooking_Forbidden(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	actor := uuid.New().String()
	bookingSvc.EXPECT().Respond(mock.Anything, id, actor, domain.RespondActionDecline, "").Return(nil, domain.ErrForbidden)

	w := postJSON(t, r, "/api/bookings/"+id+"/respond", dto.RespondRequest{
		ProviderID: actor,
		Action:     "decline",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_MarkPaid_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusPaid)
	bookingSvc.EXPECT().MarkPaid(mock.Anything, booking.ID, booking.CustomerID, "pi_123").Return(booking, nil)

	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/paid", dto.MarkPaidRequest{
		CustomerID:      booking.CustomerID,
		PaymentIntentID: "pi_123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CompleteBooking_InvalidTransition(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	provider := uuid.New().String()
	bookingSvc.EXPECT().MarkCompletedByProvider(mock.Anything, id, provider).Return(nil, domain.ErrInvalidTransition)

	w := postJSON(t, r, "/api/bookings/"+id+"/complete", dto.CompleteRequest{ProviderID: provider})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmBooking_Success(t *testing.T) {
	_, settlementSvc, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusCompleted)
	settlementSvc.EXPECT().ConfirmCompletion(mock.Anything, booking.ID, booking.CustomerID).Return(&service.ConfirmResult{
		Booking: booking,
		Payout:  service.PayoutOutcomeTransferred,
	}, nil)

	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/confirm", dto.ConfirmRequest{CustomerID: booking.CustomerID})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "transferred", resp.Payout)
	assert.Equal(t, "completed", resp.Booking.Status)
}

func TestHandler_ConfirmBooking_Conflict(t *testing.T) {
	_, settlementSvc, r := setupRouter(t)

	id := uuid.New().String()
	customer := uuid.New().String()
	settlementSvc.EXPECT().ConfirmCompletion(mock.Anything, id, customer).Return(nil, domain.ErrInvalidTransition)

	w := postJSON(t, r, "/api/bookings/"+id+"/confirm", dto.ConfirmRequest{CustomerID: customer})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Refunded(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusCanceledCustomer)
	bookingSvc.EXPECT().Cancel(mock.Anything, booking.ID, booking.CustomerID, "sick").Return(&service.CancelResult{
		Booking:  booking,
		Refunded: true,
	}, nil)

	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/cancel", dto.CancelRequest{
		ActorID: booking.CustomerID,
		Reason:  "sick",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Refunded)
}

func TestHandler_CancelBooking_RefundFailed(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	actor := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, actor, "").Return(nil, domain.ErrRefundFailed)

	w := postJSON(t, r, "/api/bookings/"+id+"/cancel", dto.CancelRequest{ActorID: actor})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_CancelBooking_InFlight(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	actor := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, actor, "").Return(nil, domain.ErrOperationInFlight)

	w := postJSON(t, r, "/api/bookings/"+id+"/cancel", dto.CancelRequest{ActorID: actor})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DisputeBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusDisputed)
	bookingSvc.EXPECT().Dispute(mock.Anything, booking.ID, booking.CustomerID, "no-show").Return(booking, nil)

	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/dispute", dto.DisputeRequest{
		CustomerID: booking.CustomerID,
		Reason:     "no-show",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AdminRefundBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusRefunded)
	bookingSvc.EXPECT().AdminRefund(mock.Anything, booking.ID, "admin-1", "dispute upheld").Return(booking, nil)

	w := postJSON(t, r, "/api/admin/bookings/"+booking.ID+"/refund", dto.AdminRefundRequest{
		AdminID: "admin-1",
		Reason:  "dispute upheld",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "refunded", resp.Status)
}

// --- Listings ---

func TestHandler_ListCustomerBookings(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	customerID := uuid.New().String()
	bookingSvc.EXPECT().ListByCustomer(mock.Anything, customerID).Return([]*domain.Booking{
		sampleBooking(domain.BookingStatusPending),
		sampleBooking(domain.BookingStatusCompleted),
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/"+customerID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListProviderBookings_Empty(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	bookingSvc.EXPECT().ListByProvider(mock.Anything, providerID).Return([]*domain.Booking{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/"+providerID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
