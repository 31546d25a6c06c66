package router

import (
	"net/http"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	Transition(c *ginext.Context)
	ConfirmCompletion(c *ginext.Context)
	ReportIssue(c *ginext.Context)
	CashCollected(c *ginext.Context)
	AttachEvidence(c *ginext.Context)
	ResolveDispute(c *ginext.Context)
	RefundSettled(c *ginext.Context)
	ListCustomerBookings(c *ginext.Context)
	ListPartnerBookings(c *ginext.Context)
	StreamBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	customer := middleware.RequireRole(domain.RoleCustomer)
	partner := middleware.RequireRole(domain.RolePartner)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := router.Group("/api", auth)
	{
		// Bookings
		api.POST("/bookings", customer, h.CreateBooking)
		api.GET("/bookings/stream", h.StreamBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/transitions", h.Transition)

		// Customer
		api.POST("/bookings/:id/confirm-completion", customer, h.ConfirmCompletion)
		api.POST("/bookings/:id/report-issue", customer, h.ReportIssue)
		api.GET("/customers/:id/bookings", h.ListCustomerBookings)

		// Partner
		api.POST("/bookings/:id/cash-collected", partner, h.CashCollected)
		api.POST("/bookings/:id/evidence", partner, h.AttachEvidence)
		api.GET("/partners/:id/bookings", h.ListPartnerBookings)

		// Admin
		api.POST("/bookings/:id/dispute/resolve", admin, h.ResolveDispute)
		api.POST("/admin/bookings/:id/refund-settled", admin, h.RefundSettled)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
