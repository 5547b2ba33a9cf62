package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/ndmitriev/BookPay/internal/handler/dto"
	"github.com/ndmitriev/BookPay/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	Respond(ctx context.Context, bookingID, actorID string, action domain.RespondAction, reason string) (*domain.Booking, error)
	MarkPaid(ctx context.Context, bookingID, customerID, paymentIntentID string) (*domain.Booking, error)
	MarkCompletedByProvider(ctx context.Context, bookingID, providerID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID, reason string) (*service.CancelResult, error)
	Dispute(ctx context.Context, bookingID, customerID, reason string) (*domain.Booking, error)
	AdminRefund(ctx context.Context, bookingID, adminID, reason string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error)
}

type SettlementSvc interface {
	ConfirmCompletion(ctx context.Context, bookingID, customerID string) (*service.ConfirmResult, error)
}

type Handler struct {
	bookingService    BookingSvc
	settlementService SettlementSvc
}

func NewHandler(bookingService BookingSvc, settlementService SettlementSvc) *Handler {
	return &Handler{
		bookingService:    bookingService,
		settlementService: settlementService,
	}
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
	}
	if req.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid scheduled_at format, expected RFC3339",
			})
			return
		}
		input.ScheduledAt = &scheduledAt
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RespondBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Respond(
		c.Request.Context(), id, req.ProviderID, domain.RespondAction(req.Action), req.Reason,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) MarkPaid(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.MarkPaid(c.Request.Context(), id, req.CustomerID, req.PaymentIntentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.MarkCompletedByProvider(c.Request.Context(), id, req.ProviderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.settlementService.ConfirmCompletion(c.Request.Context(), id, req.CustomerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfirmResponse(res))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.bookingService.Cancel(c.Request.Context(), id, req.ActorID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancelResponse(res))
}

func (h *Handler) DisputeBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Dispute(c.Request.Context(), id, req.CustomerID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AdminRefundBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.AdminRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.AdminRefund(c.Request.Context(), id, req.AdminID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListCustomerBookings(c *ginext.Context) {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListProviderBookings(c *ginext.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid provider id"})
		return
	}

	bookings, err := h.bookingService.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrProviderNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrEarningsNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOperationInFlight),
		errors.Is(err, domain.ErrCancelWindowClosed),
		errors.Is(err, domain.ErrMissingEarnings),
		errors.Is(err, domain.ErrServiceInactive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRefundFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
