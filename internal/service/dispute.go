package service

import (
	"context"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

// ReportServiceIssue opens a dispute on a completed, unconfirmed booking.
// Auto-confirmation is cancelled and capture stays blocked until ResolveDispute.
func (s *BookingService) ReportServiceIssue(ctx context.Context, bookingID, customerID, reason string) (*domain.Booking, error) {
	actor := domain.Actor{Role: domain.RoleCustomer, ID: customerID}
	return s.ApplyTransition(ctx, bookingID, actor, domain.TargetDisputed, domain.TransitionPayload{Reason: reason})
}

// ResolveDispute closes a dispute. In the partner's favour the booking is
// confirmed and captured, in the customer's the payment is released or refunded.
func (s *BookingService) ResolveDispute(
	ctx context.Context,
	bookingID, adminID string,
	resolution domain.DisputeResolution,
) (*domain.Booking, error) {
	actor := domain.Actor{Role: domain.RoleAdmin, ID: adminID}
	return s.ApplyTransition(ctx, bookingID, actor, domain.TargetResolved, domain.TransitionPayload{Resolution: resolution})
}
