package domain

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusOnTheWay   BookingStatus = "on_the_way"
	BookingStatusArrived    BookingStatus = "arrived"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusExpired    BookingStatus = "expired"
)

var AllStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusOnTheWay,
	BookingStatusArrived,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusRejected,
	BookingStatusExpired,
}

// ClosedStatuses завершают бронь без оказания услуги.
var ClosedStatuses = []BookingStatus{
	BookingStatusCancelled,
	BookingStatusRejected,
	BookingStatusExpired,
}

// ParseBookingStatus принимает и дефисную форму ("on-the-way"), которую шлют старые клиенты.
func ParseBookingStatus(s string) (BookingStatus, error) {
	norm := BookingStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, st := range AllStatuses {
		if st == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

func (s BookingStatus) IsClosed() bool {
	for _, st := range ClosedStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type ServiceType string

const (
	ServiceTypeHome   ServiceType = "home_service"
	ServiceTypeWalkIn ServiceType = "walk_in"
)

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodFPX     PaymentMethod = "fpx"
	PaymentMethodEwallet PaymentMethod = "ewallet"
	PaymentMethodCredits PaymentMethod = "credits"
)

// RequiresHold reports whether the method goes through provider authorize/capture.
func (m PaymentMethod) RequiresHold() bool {
	return m == PaymentMethodCard || m == PaymentMethodFPX
}

type PaymentStatus string

const (
	PaymentStatusPending         PaymentStatus = "pending"
	PaymentStatusAuthorized      PaymentStatus = "authorized"
	PaymentStatusCompleted       PaymentStatus = "completed"
	PaymentStatusReversed        PaymentStatus = "reversed"
	PaymentStatusRefundPending   PaymentStatus = "refund_pending"
	PaymentStatusRefundInitiated PaymentStatus = "refund_initiated"
	PaymentStatusRefunded        PaymentStatus = "refunded"
)

type DisputeResolution string

const (
	ResolutionCustomer DisputeResolution = "customer"
	ResolutionPartner  DisputeResolution = "partner"
)

type Service struct {
	ID              string `json:"id"               validate:"required"`
	Name            string `json:"name"             validate:"required"`
	Price           Money  `json:"price"            validate:"gt=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
}

type EvidencePhotos struct {
	Before []string `json:"before"`
	After  []string `json:"after"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Line     string   `json:"line"`
	Location Location `json:"location"`
}

type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"booking_number"`
	Version       int64         `json:"version"`
	Status        BookingStatus `json:"status"`
	ServiceType   ServiceType   `json:"service_type"`
	Services      []Service     `json:"services"`

	CustomerID string   `json:"customer_id"`
	BarberID   string   `json:"barber_id"`
	ShopID     *string  `json:"shop_id"`
	Address    *Address `json:"address"`

	DistanceKm      float64 `json:"distance_km"`
	Subtotal        Money   `json:"subtotal"`
	TravelFee       Money   `json:"travel_fee"`
	PlatformFee     Money   `json:"platform_fee"`
	TotalPrice      Money   `json:"total_price"`
	CommissionRate  float64 `json:"commission_rate"`
	Commission      Money   `json:"commission"`
	PartnerEarnings Money   `json:"partner_earnings"`

	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentSourceID string        `json:"-"`
	PaymentHoldID   string        `json:"payment_hold_id,omitempty"`
	PaymentChargeID string        `json:"payment_charge_id,omitempty"`
	PaymentRefundID string        `json:"payment_refund_id,omitempty"`

	ScheduledAt           *time.Time `json:"scheduled_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	AcceptedAt            *time.Time `json:"accepted_at"`
	OnTheWayAt            *time.Time `json:"on_the_way_at"`
	ArrivedAt             *time.Time `json:"arrived_at"`
	StartedAt             *time.Time `json:"started_at"`
	CompletedAt           *time.Time `json:"completed_at"`
	CancelledAt           *time.Time `json:"cancelled_at"`
	RejectedAt            *time.Time `json:"rejected_at"`
	ExpiredAt             *time.Time `json:"expired_at"`
	CompletionConfirmedAt *time.Time `json:"completion_confirmed_at"`
	DisputedAt            *time.Time `json:"disputed_at"`
	DisputeResolvedAt     *time.Time `json:"dispute_resolved_at"`
	PaidAt                *time.Time `json:"paid_at"`

	CancellationReason string            `json:"cancellation_reason,omitempty"`
	DisputeReason      *string           `json:"dispute_reason"`
	DisputeResolution  DisputeResolution `json:"dispute_resolution,omitempty"`
	EvidencePhotos     EvidencePhotos    `json:"evidence_photos"`
}

func (b *Booking) IsConfirmed() bool { return b.CompletionConfirmedAt != nil }

func (b *Booking) IsDisputed() bool { return b.DisputedAt != nil }

func (b *Booking) IsResolved() bool { return b.DisputeResolvedAt != nil }

// CaptureDue is true once completion is accepted and nothing blocks the charge.
func (b *Booking) CaptureDue() bool {
	return b.IsConfirmed() && !b.IsDisputed() && b.DisputeResolution != ResolutionCustomer
}

func (b *Booking) IsTerminal() bool {
	if b.Status.IsClosed() {
		return true
	}
	return b.Status == BookingStatusCompleted && (b.IsConfirmed() || b.IsResolved())
}

// Clone возвращает глубокую копию, чтобы снимки не делили слайсы и указатели.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.Services = append([]Service(nil), b.Services...)
	c.EvidencePhotos = EvidencePhotos{
		Before: append([]string(nil), b.EvidencePhotos.Before...),
		After:  append([]string(nil), b.EvidencePhotos.After...),
	}
	if b.ShopID != nil {
		v := *b.ShopID
		c.ShopID = &v
	}
	if b.Address != nil {
		v := *b.Address
		c.Address = &v
	}
	if b.DisputeReason != nil {
		v := *b.DisputeReason
		c.DisputeReason = &v
	}
	for _, p := range []**time.Time{
		&c.ScheduledAt, &c.AcceptedAt, &c.OnTheWayAt, &c.ArrivedAt, &c.StartedAt,
		&c.CompletedAt, &c.CancelledAt, &c.RejectedAt, &c.ExpiredAt,
		&c.CompletionConfirmedAt, &c.DisputedAt, &c.DisputeResolvedAt, &c.PaidAt,
	} {
		if *p != nil {
			v := **p
			*p = &v
		}
	}
	return &c
}

// progress returns the lifecycle timestamps in the order they must be filled.
func (b *Booking) progress() []*time.Time {
	return []*time.Time{b.AcceptedAt, b.OnTheWayAt, b.ArrivedAt, b.StartedAt, b.CompletedAt}
}

var progressStatuses = []BookingStatus{
	BookingStatusAccepted,
	BookingStatusOnTheWay,
	BookingStatusArrived,
	BookingStatusInProgress,
	BookingStatusCompleted,
}

func stageOf(s BookingStatus) int {
	for i, st := range progressStatuses {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// Validate checks that status, timestamps, payment and totals agree.
func (b *Booking) Validate() error {
	if len(b.Services) == 0 {
		return fmt.Errorf("%w: booking has no services", ErrValidation)
	}

	var subtotal Money
	for _, s := range b.Services {
		subtotal += s.Price
	}
	if subtotal != b.Subtotal {
		return fmt.Errorf("%w: subtotal %s does not match services sum %s", ErrValidation, b.Subtotal, subtotal)
	}
	if b.TotalPrice != b.Subtotal+b.TravelFee+b.PlatformFee {
		return fmt.Errorf("%w: total price %s is not subtotal + travel fee + platform fee", ErrValidation, b.TotalPrice)
	}

	// Таймстемпы прогресса заполняются строго по порядку.
	stamps := b.progress()
	seenNil := false
	filled := 0
	for i, ts := range stamps {
		if ts == nil {
			seenNil = true
			continue
		}
		if seenNil {
			return fmt.Errorf("%w: %s timestamp set before earlier stage", ErrValidation, progressStatuses[i])
		}
		filled = i + 1
	}
	if stage := stageOf(b.Status); stage > 0 && filled != stage {
		return fmt.Errorf("%w: status %s does not match progress timestamps", ErrValidation, b.Status)
	}
	if b.Status == BookingStatusPending && filled != 0 {
		return fmt.Errorf("%w: pending booking has progress timestamps", ErrValidation)
	}

	if b.Status == BookingStatusPending &&
		(b.PaymentStatus == PaymentStatusAuthorized || b.PaymentStatus == PaymentStatusCompleted) {
		return fmt.Errorf("%w: pending booking cannot hold a %s payment", ErrValidation, b.PaymentStatus)
	}

	if b.IsDisputed() && b.IsConfirmed() {
		return fmt.Errorf("%w: booking is both disputed and confirmed", ErrValidation)
	}
	if (b.IsConfirmed() || b.IsDisputed() || b.IsResolved()) && b.Status != BookingStatusCompleted {
		return fmt.Errorf("%w: completion outcome on a %s booking", ErrValidation, b.Status)
	}

	return nil
}
