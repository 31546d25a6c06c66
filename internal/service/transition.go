package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type roles []domain.Role

func (r roles) allows(role domain.Role) bool {
	for _, x := range r {
		if x == role {
			return true
		}
	}
	return false
}

// transitions lists, per lifecycle state, the reachable states and who may move there.
var transitions = map[domain.Target]map[domain.Target]roles{
	domain.TargetPending: {
		domain.TargetAccepted:  {domain.RolePartner},
		domain.TargetRejected:  {domain.RolePartner},
		domain.TargetExpired:   {domain.RoleSystem},
		domain.TargetCancelled: {domain.RoleCustomer},
	},
	domain.TargetAccepted: {
		domain.TargetOnTheWay:  {domain.RolePartner},
		domain.TargetCancelled: {domain.RoleCustomer},
	},
	domain.TargetOnTheWay: {
		domain.TargetArrived: {domain.RolePartner},
	},
	domain.TargetArrived: {
		domain.TargetInProgress: {domain.RolePartner},
	},
	domain.TargetInProgress: {
		domain.TargetCompleted: {domain.RolePartner, domain.RoleSystem},
	},
	domain.TargetCompleted: {
		domain.TargetConfirmed: {domain.RoleCustomer, domain.RoleSystem},
		domain.TargetDisputed:  {domain.RoleCustomer},
	},
	domain.TargetDisputed: {
		domain.TargetResolved: {domain.RoleAdmin},
	},
}

// canReach reports whether role may move any booking into target.
func canReach(role domain.Role, target domain.Target) bool {
	for _, edges := range transitions {
		if edges[target].allows(role) {
			return true
		}
	}
	return false
}

// ApplyTransition moves a booking into target on behalf of actor. A booking
// already in target is returned unchanged with no side effects.
func (s *BookingService) ApplyTransition(
	ctx context.Context,
	bookingID string,
	actor domain.Actor,
	target domain.Target,
	payload domain.TransitionPayload,
) (*domain.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "booking.ApplyTransition")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.id", bookingID),
		attribute.String("actor.role", string(actor.Role)),
		attribute.String("target", string(target)),
	)

	if err := s.validatePayload(target, payload); err != nil {
		return nil, err
	}

	b, changed, err := s.update(ctx, bookingID, func(b *domain.Booking) (bool, error) {
		if err := checkOwnership(b, actor); err != nil {
			return false, err
		}
		if payload.ExpectedVersion != nil && *payload.ExpectedVersion != b.Version {
			return false, fmt.Errorf("%w: expected version %d, current %d",
				domain.ErrConflict, *payload.ExpectedVersion, b.Version)
		}

		from := domain.StateOf(b)
		if from == target {
			if !canReach(actor.Role, target) {
				return false, fmt.Errorf("%w: %s cannot move a booking to %s", domain.ErrInvalidTransition, actor.Role, target)
			}
			return false, nil
		}

		if err := s.checkTransition(b, from, actor.Role, target); err != nil {
			return false, err
		}

		s.applyTarget(b, target, payload)
		return true, nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if !changed {
		s.logger.Debug("transition already applied",
			logger.String("booking_id", bookingID),
			logger.String("target", string(target)),
		)
		return b, nil
	}

	s.logger.Info("booking transitioned",
		logger.String("booking_id", b.ID),
		logger.String("target", string(target)),
		logger.String("actor", string(actor.Role)),
		logger.Int64("version", b.Version),
	)

	return s.afterTransition(ctx, b, target)
}

func (s *BookingService) validatePayload(target domain.Target, payload domain.TransitionPayload) error {
	switch target {
	case domain.TargetDisputed:
		reason := strings.TrimSpace(payload.Reason)
		if utf8.RuneCountInString(reason) < s.cfg.MinDisputeReason {
			return fmt.Errorf("%w: dispute reason must be at least %d characters", domain.ErrValidation, s.cfg.MinDisputeReason)
		}
	case domain.TargetResolved:
		if payload.Resolution != domain.ResolutionCustomer && payload.Resolution != domain.ResolutionPartner {
			return fmt.Errorf("%w: resolution must be customer or partner", domain.ErrValidation)
		}
	}
	return nil
}

func (s *BookingService) checkTransition(b *domain.Booking, from domain.Target, role domain.Role, target domain.Target) error {
	allowed, ok := transitions[from][target]
	if !ok || !allowed.allows(role) {
		return fmt.Errorf("%w: %s -> %s by %s", domain.ErrInvalidTransition, from, target, role)
	}

	now := s.now()
	switch {
	case target == domain.TargetExpired:
		if now.Before(b.CreatedAt.Add(s.cfg.ExpiryWindow)) {
			return fmt.Errorf("%w: partner response window is still open", domain.ErrInvalidTransition)
		}
	case target == domain.TargetConfirmed && role == domain.RoleSystem:
		if b.CompletedAt == nil || now.Before(b.CompletedAt.Add(s.cfg.AutoConfirmWindow)) {
			return fmt.Errorf("%w: auto-confirmation is not due yet", domain.ErrInvalidTransition)
		}
	case target == domain.TargetOnTheWay && b.PaymentMethod.RequiresHold():
		if b.PaymentStatus != domain.PaymentStatusAuthorized {
			return fmt.Errorf("%w: payment hold is not placed yet", domain.ErrInvalidTransition)
		}
	}
	return nil
}

func (s *BookingService) applyTarget(b *domain.Booking, target domain.Target, payload domain.TransitionPayload) {
	now := s.now()

	switch target {
	case domain.TargetAccepted:
		b.AcceptedAt = &now
	case domain.TargetOnTheWay:
		b.OnTheWayAt = &now
	case domain.TargetArrived:
		b.ArrivedAt = &now
	case domain.TargetInProgress:
		b.StartedAt = &now
	case domain.TargetCompleted:
		b.CompletedAt = &now
	case domain.TargetCancelled:
		b.CancelledAt = &now
		b.CancellationReason = strings.TrimSpace(payload.Reason)
	case domain.TargetRejected:
		b.RejectedAt = &now
		b.CancellationReason = strings.TrimSpace(payload.Reason)
	case domain.TargetExpired:
		b.ExpiredAt = &now
	case domain.TargetConfirmed:
		b.CompletionConfirmedAt = &now
	case domain.TargetDisputed:
		reason := strings.TrimSpace(payload.Reason)
		b.DisputedAt = &now
		b.DisputeReason = &reason
	case domain.TargetResolved:
		b.DisputedAt = nil
		b.DisputeResolvedAt = &now
		b.DisputeResolution = payload.Resolution
		if payload.Resolution == domain.ResolutionPartner {
			b.CompletionConfirmedAt = &now
		}
	}

	switch target {
	case domain.TargetConfirmed, domain.TargetDisputed, domain.TargetResolved:
		// подсостояния completed, статус не меняется
	default:
		b.Status = domain.BookingStatus(target)
	}
}

// afterTransition runs the side effects of a committed transition.
func (s *BookingService) afterTransition(ctx context.Context, b *domain.Booking, target domain.Target) (*domain.Booking, error) {
	switch target {
	case domain.TargetAccepted:
		s.deadlines.Cancel(b.ID)
		if b.PaymentMethod.RequiresHold() {
			return s.authorize(ctx, b)
		}

	case domain.TargetCompleted:
		at := b.CompletedAt.Add(s.cfg.AutoConfirmWindow)
		if err := s.deadlines.ScheduleAutoConfirm(b.ID, at); err != nil {
			s.logger.Warn("failed to schedule auto-confirmation, reconciler will pick it up",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}

	case domain.TargetCancelled, domain.TargetRejected, domain.TargetExpired, domain.TargetConfirmed:
		s.deadlines.Cancel(b.ID)
		return s.settleCommitted(ctx, b), nil

	case domain.TargetDisputed:
		s.deadlines.Cancel(b.ID)
		go s.alerter.NotifyDisputeOpened(context.WithoutCancel(ctx), b.Clone())

	case domain.TargetResolved:
		return s.settleCommitted(ctx, b), nil
	}

	return b, nil
}

// isSettledRace reports errors that mean another writer already moved the booking on.
func isSettledRace(err error) bool {
	return errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrConflict)
}
