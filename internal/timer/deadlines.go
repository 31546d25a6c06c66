package timer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type deadlineRunner interface {
	ExpireBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	AutoConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}

const (
	kindExpiry      = "expiry"
	kindAutoConfirm = "auto_confirm"
)

// Deadlines keeps one-shot in-process timers per booking. Timers are lost on
// restart; the service rebuilds them and the periodic sweep catches the rest.
type Deadlines struct {
	scheduler gocron.Scheduler
	clock     clockwork.Clock
	logger    logger.Logger

	mu     sync.RWMutex
	ctx    context.Context
	runner deadlineRunner
	jobs   map[string]uuid.UUID
}

func New(clock clockwork.Clock, logger logger.Logger) (*Deadlines, error) {
	s, err := gocron.NewScheduler(
		gocron.WithClock(clock),
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("create deadline scheduler: %w", err)
	}

	return &Deadlines{
		scheduler: s,
		clock:     clock,
		logger:    logger,
		ctx:       context.Background(),
		jobs:      make(map[string]uuid.UUID),
	}, nil
}

// Start begins firing timers into runner. Timers registered earlier are kept.
func (d *Deadlines) Start(ctx context.Context, runner deadlineRunner) {
	d.mu.Lock()
	d.ctx = ctx
	d.runner = runner
	d.mu.Unlock()

	d.scheduler.Start()
	d.logger.Info("deadline timers started", logger.Int("pending", d.Pending()))
}

func (d *Deadlines) Shutdown() error {
	return d.scheduler.Shutdown()
}

func (d *Deadlines) ScheduleExpiry(bookingID string, at time.Time) error {
	return d.schedule(kindExpiry, bookingID, at)
}

func (d *Deadlines) ScheduleAutoConfirm(bookingID string, at time.Time) error {
	return d.schedule(kindAutoConfirm, bookingID, at)
}

// Cancel drops every timer of the booking.
func (d *Deadlines) Cancel(bookingID string) {
	d.remove(jobKey(kindExpiry, bookingID))
	d.remove(jobKey(kindAutoConfirm, bookingID))
}

func (d *Deadlines) Pending() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.jobs)
}

func (d *Deadlines) remove(key string) {
	d.mu.Lock()
	id, ok := d.jobs[key]
	delete(d.jobs, key)
	d.mu.Unlock()

	if !ok {
		return
	}
	if err := d.scheduler.RemoveJob(id); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		d.logger.Warn("failed to remove deadline", logger.String("job", key), logger.String("error", err.Error()))
	}
}

func (d *Deadlines) schedule(kind, bookingID string, at time.Time) error {
	key := jobKey(kind, bookingID)
	d.remove(key)

	start := gocron.OneTimeJobStartImmediately()
	if at.After(d.clock.Now()) {
		start = gocron.OneTimeJobStartDateTime(at)
	}

	job, err := d.scheduler.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(d.fire, kind, bookingID),
		gocron.WithName(key),
		gocron.WithTags(bookingID, kind),
	)
	if err != nil {
		return fmt.Errorf("schedule %s for booking %s: %w", kind, bookingID, err)
	}

	d.mu.Lock()
	d.jobs[key] = job.ID()
	d.mu.Unlock()

	d.logger.Debug("deadline scheduled",
		logger.String("kind", kind),
		logger.String("booking_id", bookingID),
		logger.String("at", at.UTC().Format(time.RFC3339)),
	)
	return nil
}

func (d *Deadlines) fire(kind, bookingID string) {
	d.mu.Lock()
	ctx, runner := d.ctx, d.runner
	delete(d.jobs, jobKey(kind, bookingID))
	d.mu.Unlock()

	if runner == nil {
		d.logger.Warn("deadline fired before start", logger.String("booking_id", bookingID))
		return
	}
	if ctx.Err() != nil {
		return
	}

	var (
		b   *domain.Booking
		err error
	)
	switch kind {
	case kindExpiry:
		b, err = runner.ExpireBooking(ctx, bookingID)
	case kindAutoConfirm:
		b, err = runner.AutoConfirmBooking(ctx, bookingID)
	}

	if err != nil {
		// бронь уже ушла дальше другим путём
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrConflict) {
			d.logger.Debug("deadline no longer applies",
				logger.String("kind", kind),
				logger.String("booking_id", bookingID),
				logger.String("reason", err.Error()),
			)
			return
		}
		d.logger.Error("deadline action failed",
			logger.String("kind", kind),
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return
	}

	d.logger.Info("deadline fired",
		logger.String("kind", kind),
		logger.String("booking_id", bookingID),
		logger.String("status", string(b.Status)),
	)
}

func jobKey(kind, bookingID string) string {
	return kind + ":" + bookingID
}
