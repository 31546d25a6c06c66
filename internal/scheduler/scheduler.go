package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	ExpireOverdue(ctx context.Context) ([]*domain.Booking, error)
	AutoConfirmOverdue(ctx context.Context) ([]*domain.Booking, error)
	SettleOutstanding(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically catches deadlines and settlements that the
// per-booking timers missed (restart, provider outage, lost timer).
type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	s.sweep(ctx, "expired", s.bookingService.ExpireOverdue)
	s.sweep(ctx, "auto-confirmed", s.bookingService.AutoConfirmOverdue)
	s.sweep(ctx, "settled", s.bookingService.SettleOutstanding)
}

func (s *Scheduler) sweep(ctx context.Context, action string, run func(ctx context.Context) ([]*domain.Booking, error)) {
	bookings, err := run(ctx)
	if err != nil {
		s.logger.Error("sweep failed",
			logger.String("action", action),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range bookings {
		s.logger.Info("booking "+action+" by sweep",
			logger.String("booking_id", b.ID),
			logger.String("customer_id", b.CustomerID),
			logger.String("barber_id", b.BarberID),
			logger.String("payment_status", string(b.PaymentStatus)),
		)
	}
}
