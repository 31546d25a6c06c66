package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func (s *BookingService) scheduleExpiry(b *domain.Booking) {
	at := b.CreatedAt.Add(s.cfg.ExpiryWindow)
	if err := s.deadlines.ScheduleExpiry(b.ID, at); err != nil {
		s.logger.Warn("failed to schedule expiry, reconciler will pick it up",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

// ExpireBooking fires the partner-response timeout. A booking that already
// left pending is returned as is.
func (s *BookingService) ExpireBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.Status != domain.BookingStatusPending {
		return b, nil
	}
	return s.ApplyTransition(ctx, bookingID, domain.SystemActor, domain.TargetExpired, domain.TransitionPayload{})
}

// AutoConfirmBooking confirms completion on the customer's behalf once the
// window has passed. Confirmed or disputed bookings are left alone.
func (s *BookingService) AutoConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if domain.StateOf(b) != domain.TargetCompleted {
		return b, nil
	}
	return s.ApplyTransition(ctx, bookingID, domain.SystemActor, domain.TargetConfirmed, domain.TransitionPayload{})
}

func (s *BookingService) ExpireOverdue(ctx context.Context) ([]*domain.Booking, error) {
	overdue, err := s.repo.ListPendingCreatedBefore(ctx, s.now().Add(-s.cfg.ExpiryWindow))
	if err != nil {
		return nil, fmt.Errorf("list overdue pending: %w", err)
	}
	return s.sweep(ctx, overdue, s.ExpireBooking), nil
}

func (s *BookingService) AutoConfirmOverdue(ctx context.Context) ([]*domain.Booking, error) {
	due, err := s.repo.ListAwaitingConfirmation(ctx, s.now().Add(-s.cfg.AutoConfirmWindow))
	if err != nil {
		return nil, fmt.Errorf("list awaiting confirmation: %w", err)
	}
	return s.sweep(ctx, due, s.AutoConfirmBooking), nil
}

func (s *BookingService) sweep(
	ctx context.Context,
	bookings []*domain.Booking,
	fire func(ctx context.Context, id string) (*domain.Booking, error),
) []*domain.Booking {
	var done []*domain.Booking
	for _, b := range bookings {
		res, err := fire(ctx, b.ID)
		if err != nil {
			if !isSettledRace(err) {
				s.logger.Error("deferred action failed",
					logger.String("booking_id", b.ID),
					logger.String("error", err.Error()),
				)
			}
			continue
		}
		done = append(done, res)
	}
	return done
}

// RescheduleDeadlines rebuilds in-memory timers from the registry after a restart.
func (s *BookingService) RescheduleDeadlines(ctx context.Context) (int, error) {
	now := s.now()

	pending, err := s.repo.ListPendingCreatedBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list pending: %w", err)
	}
	for _, b := range pending {
		s.scheduleExpiry(b)
	}

	awaiting, err := s.repo.ListAwaitingConfirmation(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list awaiting confirmation: %w", err)
	}
	for _, b := range awaiting {
		at := b.CompletedAt.Add(s.cfg.AutoConfirmWindow)
		if err := s.deadlines.ScheduleAutoConfirm(b.ID, at); err != nil {
			s.logger.Warn("failed to reschedule auto-confirmation",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return len(pending) + len(awaiting), nil
}
