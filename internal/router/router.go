package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	RespondBooking(c *ginext.Context)
	MarkPaid(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	DisputeBooking(c *ginext.Context)
	AdminRefundBooking(c *ginext.Context)
	ListCustomerBookings(c *ginext.Context)
	ListProviderBookings(c *ginext.Context)
}

type WebhookHandler interface {
	PaymentConnect(c *ginext.Context)
	Identity(c *ginext.Context)
}

func InitRouter(mode string, h Handler, wh WebhookHandler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/respond", h.RespondBooking)
		api.POST("/bookings/:id/paid", h.MarkPaid)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/dispute", h.DisputeBooking)

		// Listings
		api.GET("/customers/:id/bookings", h.ListCustomerBookings)
		api.GET("/providers/:id/bookings", h.ListProviderBookings)

		// Admin
		api.POST("/admin/bookings/:id/refund", h.AdminRefundBooking)
	}

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/payment-connect", wh.PaymentConnect)
		webhooks.POST("/identity", wh.Identity)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
