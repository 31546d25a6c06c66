package dto

import (
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

// BookingResponse is the full booking snapshot plus its lifecycle state.
type BookingResponse struct {
	*domain.Booking
	State string `json:"state"`
}

type BookingEventResponse struct {
	Type       string          `json:"type"`
	BookingID  string          `json:"booking_id"`
	Version    int64           `json:"version"`
	State      string          `json:"state"`
	OccurredAt string          `json:"occurred_at"`
	Booking    BookingResponse `json:"booking"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		Booking: b,
		State:   string(domain.StateOf(b)),
	}
}

func ToBookingListResponse(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToBookingEventResponse(e domain.BookingEvent) BookingEventResponse {
	return BookingEventResponse{
		Type:       "booking_changed",
		BookingID:  e.BookingID,
		Version:    e.Version,
		State:      string(e.State),
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
		Booking:    ToBookingResponse(e.Booking),
	}
}
