package domain

import "time"

// BookingEvent is a committed booking snapshot fanned out to subscribers.
type BookingEvent struct {
	BookingID  string        `json:"booking_id"`
	CustomerID string        `json:"customer_id"`
	PartnerID  string        `json:"partner_id"`
	Version    int64         `json:"version"`
	Status     BookingStatus `json:"status"`
	State      Target        `json:"state"`
	Booking    *Booking      `json:"booking"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewBookingEvent(b *Booking) BookingEvent {
	return BookingEvent{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		PartnerID:  b.BarberID,
		Version:    b.Version,
		Status:     b.Status,
		State:      StateOf(b),
		Booking:    b.Clone(),
		OccurredAt: b.UpdatedAt,
	}
}

type CreateBookingInput struct {
	CustomerID      string         `validate:"required"`
	BarberID        string         `validate:"required"`
	ServiceType     ServiceType    `validate:"required,oneof=home_service walk_in"`
	Services        []Service      `validate:"required,min=1,dive"`
	Address         *Address       `validate:"required_if=ServiceType home_service"`
	ShopID          *string        `validate:"required_if=ServiceType walk_in"`
	PartnerLocation *Location      `validate:"required_if=ServiceType home_service"`
	ScheduledAt     *time.Time
	PaymentMethod   PaymentMethod `validate:"required,oneof=cash card fpx ewallet credits"`
	PaymentSourceID string        `validate:"required_if=PaymentMethod card,required_if=PaymentMethod fpx"`
}
