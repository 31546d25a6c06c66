package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/handler/dto"
	"github.com/stpnv0/mari-gunting/internal/middleware"
	"github.com/stpnv0/mari-gunting/internal/notification"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type BookingSvc interface {
	CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*domain.Booking, error)
	ApplyTransition(ctx context.Context, bookingID string, actor domain.Actor, target domain.Target, payload domain.TransitionPayload) (*domain.Booking, error)
	ConfirmServiceCompletion(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
	ReportServiceIssue(ctx context.Context, bookingID, customerID, reason string) (*domain.Booking, error)
	ConfirmCashPayment(ctx context.Context, bookingID, partnerID string) (*domain.Booking, error)
	AttachEvidence(ctx context.Context, bookingID, partnerID string, before, after []string) (*domain.Booking, error)
	ResolveDispute(ctx context.Context, bookingID, adminID string, resolution domain.DisputeResolution) (*domain.Booking, error)
	MarkRefundSettled(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error)
}

type EventStream interface {
	Subscribe(f notification.Filter) *notification.Subscription
}

type Handler struct {
	bookingService BookingSvc
	stream         EventStream
	logger         logger.Logger
}

func NewHandler(bookingService BookingSvc, stream EventStream, logger logger.Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		stream:         stream,
		logger:         logger,
	}
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req.ToInput(actor.ID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !canView(actor, booking) {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) Transition(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	target, err := domain.ParseTarget(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	payload := domain.TransitionPayload{
		ExpectedVersion: req.ExpectedVersion,
		Reason:          req.Reason,
		Resolution:      domain.DisputeResolution(req.Resolution),
	}
	booking, err := h.bookingService.ApplyTransition(c.Request.Context(), c.Param("id"), actor, target, payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmCompletion(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmServiceCompletion(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ReportIssue(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ReportServiceIssue(c.Request.Context(), c.Param("id"), actor.ID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CashCollected(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmCashPayment(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AttachEvidence(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.EvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.AttachEvidence(c.Request.Context(), c.Param("id"), actor.ID, req.Before, req.After)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Admin

func (h *Handler) ResolveDispute(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ResolveDispute(c.Request.Context(), c.Param("id"), actor.ID, domain.DisputeResolution(req.Favor))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RefundSettled(c *ginext.Context) {
	booking, err := h.bookingService.MarkRefundSettled(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Lists

func (h *Handler) ListCustomerBookings(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	customerID := c.Param("id")
	if actor.Role != domain.RoleAdmin && actor.ID != customerID {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListResponse(bookings))
}

func (h *Handler) ListPartnerBookings(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	partnerID := c.Param("id")
	if actor.Role != domain.RoleAdmin && actor.ID != partnerID {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	bookings, err := h.bookingService.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListResponse(bookings))
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
	}
	return actor, ok
}

func canView(actor domain.Actor, b *domain.Booking) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCustomer:
		return b.CustomerID == actor.ID
	case domain.RolePartner:
		return b.BarberID == actor.ID
	}
	return false
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentAuthorizationFailed),
		errors.Is(err, domain.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		h.logger.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
			logger.String("path", c.FullPath()),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
