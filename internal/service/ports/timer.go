package ports

import "time"

// DeadlineScheduler holds at most one deferred action per booking.
type DeadlineScheduler interface {
	ScheduleExpiry(bookingID string, at time.Time) error
	ScheduleAutoConfirm(bookingID string, at time.Time) error
	Cancel(bookingID string)
}
