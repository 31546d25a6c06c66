package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// authorize places the hold for an accepted booking. On any failure the
// accept is rolled back so the booking stays pending.
func (s *BookingService) authorize(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	var holdID string
	err := s.callProvider(ctx, "authorize", b.ID, func(ctx context.Context) error {
		id, err := s.payments.Authorize(ctx, ports.AuthorizeRequest{
			Reference: b.ID,
			Amount:    b.TotalPrice,
			Method:    b.PaymentMethod,
			SourceID:  b.PaymentSourceID,
		})
		holdID = id
		return err
	})
	if err != nil {
		s.rollbackAccept(ctx, b.ID)
		if errors.Is(err, domain.ErrPaymentDeclined) {
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentAuthorizationFailed, err)
		}
		return nil, err
	}

	updated, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
		if cur.PaymentStatus != domain.PaymentStatusPending {
			return false, nil
		}
		cur.PaymentStatus = domain.PaymentStatusAuthorized
		cur.PaymentHoldID = holdID
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("record authorization: %w", err)
	}

	s.logger.Info("payment authorized",
		logger.String("booking_id", b.ID),
		logger.String("hold_id", holdID),
		logger.String("amount", b.TotalPrice.String()),
	)

	// Клиент мог отменить бронь, пока шла авторизация
	if updated.PendingSettlement() != domain.SettleNone {
		return s.settleCommitted(ctx, updated), nil
	}
	return updated, nil
}

func (s *BookingService) rollbackAccept(ctx context.Context, id string) {
	reverted, changed, err := s.update(ctx, id, func(cur *domain.Booking) (bool, error) {
		if cur.Status != domain.BookingStatusAccepted || cur.PaymentStatus != domain.PaymentStatusPending {
			return false, nil
		}
		cur.Status = domain.BookingStatusPending
		cur.AcceptedAt = nil
		return true, nil
	})
	if err != nil {
		s.logger.Error("failed to roll back accept",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
		return
	}
	if changed {
		s.logger.Warn("accept rolled back after failed authorization", logger.String("booking_id", id))
		s.scheduleExpiry(reverted)
	}
}

// settle performs whatever payment step the freshly read booking still owes.
// Capture re-checks the booking so a dispute opened in between suppresses it.
func (s *BookingService) settle(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	cur, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	step := cur.PendingSettlement()
	switch step {
	case domain.SettleNone:
		return cur, nil
	case domain.SettleAuthorize:
		cur, err = s.authorize(ctx, cur)
	case domain.SettleCapture:
		cur, err = s.capture(ctx, cur)
	case domain.SettleRelease:
		cur, err = s.release(ctx, cur)
	case domain.SettleRefund:
		cur, err = s.refund(ctx, cur)
	case domain.SettleComplete:
		cur, err = s.completeWithoutProvider(ctx, cur)
	}
	if err != nil {
		s.logger.Error("settlement step failed",
			logger.String("booking_id", b.ID),
			logger.String("step", string(step)),
			logger.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrPaymentDeclined) {
			go s.alerter.NotifySettlementFailed(context.WithoutCancel(ctx), b.Clone(), string(step), err)
		}
		return nil, err
	}
	return cur, nil
}

// settleCommitted settles after a transition that is already committed. A failed
// step is left to SettleOutstanding and the caller still gets the committed booking.
func (s *BookingService) settleCommitted(ctx context.Context, b *domain.Booking) *domain.Booking {
	settled, err := s.settle(ctx, b)
	if err == nil {
		return settled
	}

	s.logger.Warn("settlement deferred to reconciler",
		logger.String("booking_id", b.ID),
		logger.String("error", err.Error()),
	)
	cur, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return b
	}
	return cur
}

func (s *BookingService) capture(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	var chargeID string
	err := s.callProvider(ctx, "capture", b.ID, func(ctx context.Context) error {
		id, err := s.payments.Capture(ctx, b.PaymentHoldID)
		chargeID = id
		return err
	})
	if err != nil {
		return nil, err
	}

	updated, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
		if cur.PaymentStatus != domain.PaymentStatusAuthorized {
			return false, nil
		}
		now := s.now()
		cur.PaymentStatus = domain.PaymentStatusCompleted
		cur.PaymentChargeID = chargeID
		cur.PaidAt = &now
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("record capture: %w", err)
	}

	s.logger.Info("payment captured",
		logger.String("booking_id", b.ID),
		logger.String("charge_id", chargeID),
	)
	return updated, nil
}

func (s *BookingService) release(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	err := s.callProvider(ctx, "void", b.ID, func(ctx context.Context) error {
		return s.payments.Void(ctx, b.PaymentHoldID)
	})
	if err != nil {
		return nil, err
	}

	updated, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
		if cur.PaymentStatus != domain.PaymentStatusAuthorized {
			return false, nil
		}
		cur.PaymentStatus = domain.PaymentStatusReversed
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("record release: %w", err)
	}

	s.logger.Info("payment hold released", logger.String("booking_id", b.ID))
	return updated, nil
}

// refund walks refund_pending -> refund_initiated; the provider settlement
// callback moves it to refunded. Wallet payments are refunded in place.
func (s *BookingService) refund(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	pending, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
		if cur.PaymentStatus != domain.PaymentStatusCompleted {
			return false, nil
		}
		cur.PaymentStatus = domain.PaymentStatusRefundPending
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark refund pending: %w", err)
	}
	if pending.PaymentStatus != domain.PaymentStatusRefundPending {
		return pending, nil
	}

	if !pending.PaymentMethod.RequiresHold() {
		updated, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
			if cur.PaymentStatus != domain.PaymentStatusRefundPending {
				return false, nil
			}
			cur.PaymentStatus = domain.PaymentStatusRefunded
			return true, nil
		})
		return updated, err
	}

	var refundID string
	err = s.callProvider(ctx, "refund", b.ID, func(ctx context.Context) error {
		id, err := s.payments.Refund(ctx, pending.PaymentChargeID, pending.TotalPrice)
		refundID = id
		return err
	})
	if err != nil {
		return nil, err
	}

	updated, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
		if cur.PaymentStatus != domain.PaymentStatusRefundPending {
			return false, nil
		}
		cur.PaymentStatus = domain.PaymentStatusRefundInitiated
		cur.PaymentRefundID = refundID
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("record refund: %w", err)
	}

	s.logger.Info("refund initiated",
		logger.String("booking_id", b.ID),
		logger.String("refund_id", refundID),
	)
	return updated, nil
}

// completeWithoutProvider settles ewallet and credits bookings, which carry no hold.
func (s *BookingService) completeWithoutProvider(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	updated, _, err := s.update(ctx, b.ID, func(cur *domain.Booking) (bool, error) {
		if cur.PendingSettlement() != domain.SettleComplete {
			return false, nil
		}
		now := s.now()
		cur.PaymentStatus = domain.PaymentStatusCompleted
		cur.PaidAt = &now
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("record wallet payment: %w", err)
	}
	return updated, nil
}

// MarkRefundSettled is called once the provider reports the refund as paid out.
func (s *BookingService) MarkRefundSettled(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, _, err := s.update(ctx, bookingID, func(cur *domain.Booking) (bool, error) {
		switch cur.PaymentStatus {
		case domain.PaymentStatusRefunded:
			return false, nil
		case domain.PaymentStatusRefundInitiated:
			cur.PaymentStatus = domain.PaymentStatusRefunded
			return true, nil
		}
		return false, fmt.Errorf("%w: no refund in flight (payment status %s)", domain.ErrInvalidTransition, cur.PaymentStatus)
	})
	return b, err
}

// SettleOutstanding retries payment steps that a crash or provider outage left behind.
func (s *BookingService) SettleOutstanding(ctx context.Context) ([]*domain.Booking, error) {
	pending, err := s.repo.ListUnsettled(ctx, s.now().Add(-s.cfg.SettlementGrace))
	if err != nil {
		return nil, fmt.Errorf("list unsettled: %w", err)
	}

	var settled []*domain.Booking
	for _, b := range pending {
		res, err := s.settle(ctx, b)
		if err != nil {
			continue
		}
		settled = append(settled, res)
	}
	return settled, nil
}

// callProvider retries transient provider failures with backoff. Declines are
// returned as is; exhausted retries become ErrPaymentProviderUnavailable.
func (s *BookingService) callProvider(ctx context.Context, op, bookingID string, call func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "payment."+op)
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", bookingID))

	var permanent error
	attempt := 0
	err := retry.Do(func() error {
		attempt++
		if err := ctx.Err(); err != nil {
			permanent = err
			return nil
		}
		err := call(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrPaymentDeclined) {
			permanent = err
			return nil
		}
		s.logger.Warn("payment provider call failed",
			logger.String("op", op),
			logger.String("booking_id", bookingID),
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)
		return err
	}, s.cfg.PaymentRetry)

	switch {
	case permanent != nil:
		span.SetStatus(codes.Error, permanent.Error())
		return fmt.Errorf("%s: %w", op, permanent)
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%w: %s after %d attempts: %v", domain.ErrPaymentProviderUnavailable, op, attempt, err)
	}
	return nil
}
