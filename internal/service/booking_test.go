package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/pricing"
	"github.com/stpnv0/mari-gunting/internal/repository"
	"github.com/stpnv0/mari-gunting/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	customerID = "cust-1"
	partnerID  = "barber-1"
)

var startTime = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type scheduled struct {
	id string
	at time.Time
}

type harness struct {
	svc      *BookingService
	repo     *repository.MemoryBookingRepository
	payments *mocks.MockPaymentProvider
	clock    *clockwork.FakeClock
	alerts   chan string

	mu          sync.Mutex
	expiries    []scheduled
	autoConfirm []scheduled
	cancelled   []string
	events      []domain.BookingEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		repo:     repository.NewMemoryBookingRepo(),
		payments: mocks.NewMockPaymentProvider(t),
		clock:    clockwork.NewFakeClockAt(startTime),
		alerts:   make(chan string, 16),
	}

	distance := mocks.NewMockDistanceProvider(t)
	distance.EXPECT().DistanceKm(mock.Anything, mock.Anything, mock.Anything).Return(6.0, nil).Maybe()

	deadlines := mocks.NewMockDeadlineScheduler(t)
	deadlines.EXPECT().ScheduleExpiry(mock.Anything, mock.Anything).
		Run(func(id string, at time.Time) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.expiries = append(h.expiries, scheduled{id, at})
		}).Return(nil).Maybe()
	deadlines.EXPECT().ScheduleAutoConfirm(mock.Anything, mock.Anything).
		Run(func(id string, at time.Time) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.autoConfirm = append(h.autoConfirm, scheduled{id, at})
		}).Return(nil).Maybe()
	deadlines.EXPECT().Cancel(mock.Anything).
		Run(func(id string) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.cancelled = append(h.cancelled, id)
		}).Return().Maybe()

	publisher := mocks.NewMockChangePublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e domain.BookingEvent) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.events = append(h.events, e)
		}).Return().Maybe()

	alerter := mocks.NewMockAdminAlerter(t)
	alerter.EXPECT().NotifyDisputeOpened(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { h.alerts <- "dispute:" + b.ID }).
		Return().Maybe()
	alerter.EXPECT().NotifySettlementFailed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking, op string, _ error) { h.alerts <- op + ":" + b.ID }).
		Return().Maybe()

	cfg := DefaultConfig()
	cfg.PaymentRetry = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	h.svc = NewBookingService(
		h.repo,
		pricing.NewCalculator(pricing.DefaultConfig()),
		h.payments,
		distance,
		deadlines,
		publisher,
		alerter,
		h.clock,
		cfg,
		newTestLogger(t),
	)
	return h
}

func (h *harness) get(t *testing.T, id string) *domain.Booking {
	t.Helper()
	b, err := h.repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return b
}

func homeInput(method domain.PaymentMethod) domain.CreateBookingInput {
	in := domain.CreateBookingInput{
		CustomerID:  customerID,
		BarberID:    partnerID,
		ServiceType: domain.ServiceTypeHome,
		Services: []domain.Service{
			{ID: "s1", Name: "Haircut", Price: 5000, DurationMinutes: 45},
			{ID: "s2", Name: "Beard trim", Price: 3000, DurationMinutes: 20},
		},
		Address:         &domain.Address{Line: "Jalan Ampang 12", Location: domain.Location{Lat: 3.16, Lng: 101.71}},
		PartnerLocation: &domain.Location{Lat: 3.14, Lng: 101.69},
		PaymentMethod:   method,
	}
	if method.RequiresHold() {
		in.PaymentSourceID = "tokn_test_1"
	}
	return in
}

// seed stores a walk-in booking already in the given lifecycle state.
func seed(t *testing.T, h *harness, state domain.Target, method domain.PaymentMethod, opts ...func(b *domain.Booking)) *domain.Booking {
	t.Helper()

	now := h.clock.Now().UTC()
	shop := "shop-1"
	b := &domain.Booking{
		ID:             "bk-" + string(state),
		BookingNumber:  "MG-TEST0001",
		Version:        1,
		Status:         domain.BookingStatusPending,
		ServiceType:    domain.ServiceTypeWalkIn,
		Services:       []domain.Service{{ID: "s1", Name: "Quick haircut", Price: 3500}},
		CustomerID:     customerID,
		BarberID:       partnerID,
		ShopID:         &shop,
		Subtotal:       3500,
		PlatformFee:    200,
		TotalPrice:     3700,
		CommissionRate: 0.12,
		PaymentMethod:  method,
		PaymentStatus:  domain.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if method.RequiresHold() {
		b.PaymentSourceID = "tokn_test_1"
	}

	stage := func(n int) {
		stamps := []**time.Time{&b.AcceptedAt, &b.OnTheWayAt, &b.ArrivedAt, &b.StartedAt, &b.CompletedAt}
		for i := 0; i < n; i++ {
			ts := now
			*stamps[i] = &ts
		}
		if n > 0 && method.RequiresHold() {
			b.PaymentStatus = domain.PaymentStatusAuthorized
			b.PaymentHoldID = "chrg_hold_1"
		}
	}
	at := now

	switch state {
	case domain.TargetPending:
	case domain.TargetAccepted:
		stage(1)
	case domain.TargetOnTheWay:
		stage(2)
	case domain.TargetArrived:
		stage(3)
	case domain.TargetInProgress:
		stage(4)
	case domain.TargetCompleted:
		stage(5)
	case domain.TargetConfirmed:
		stage(5)
		b.CompletionConfirmedAt = &at
	case domain.TargetDisputed:
		stage(5)
		reason := "barber left halfway"
		b.DisputedAt = &at
		b.DisputeReason = &reason
	case domain.TargetResolved:
		stage(5)
		b.DisputeResolvedAt = &at
		b.DisputeResolution = domain.ResolutionPartner
		b.CompletionConfirmedAt = &at
	case domain.TargetCancelled:
		b.CancelledAt = &at
	case domain.TargetRejected:
		b.RejectedAt = &at
	case domain.TargetExpired:
		b.ExpiredAt = &at
	}
	if state != domain.TargetConfirmed && state != domain.TargetDisputed && state != domain.TargetResolved {
		b.Status = domain.BookingStatus(state)
	} else {
		b.Status = domain.BookingStatusCompleted
	}
	for _, opt := range opts {
		opt(b)
	}

	require.NoError(t, b.Validate())
	require.NoError(t, h.repo.Create(context.Background(), b))
	return b
}

func TestBookingService_CreateBooking_HomeService(t *testing.T) {
	h := newHarness(t)

	b, err := h.svc.CreateBooking(context.Background(), homeInput(domain.PaymentMethodCard))

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, domain.PaymentStatusPending, b.PaymentStatus)
	assert.Equal(t, int64(1), b.Version)
	assert.Regexp(t, `^MG-[0-9A-F]{8}$`, b.BookingNumber)
	assert.Equal(t, domain.Money(8000), b.Subtotal)
	assert.Equal(t, domain.Money(700), b.TravelFee)
	assert.Equal(t, domain.Money(200), b.PlatformFee)
	assert.Equal(t, domain.Money(8900), b.TotalPrice)
	assert.Equal(t, domain.Money(7500), b.PartnerEarnings)

	stored := h.get(t, b.ID)
	assert.Equal(t, b.TotalPrice, stored.TotalPrice)

	require.Len(t, h.expiries, 1)
	assert.Equal(t, b.CreatedAt.Add(3*time.Minute), h.expiries[0].at)
	require.Len(t, h.events, 1)
	assert.Equal(t, domain.TargetPending, h.events[0].State)
}

func TestBookingService_CreateBooking_WalkInSkipsDistance(t *testing.T) {
	h := newHarness(t)
	shop := "shop-1"

	b, err := h.svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		CustomerID:    customerID,
		BarberID:      partnerID,
		ServiceType:   domain.ServiceTypeWalkIn,
		Services:      []domain.Service{{ID: "s1", Name: "Haircut", Price: 5000}},
		ShopID:        &shop,
		PaymentMethod: domain.PaymentMethodCash,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Money(0), b.TravelFee)
	assert.Equal(t, domain.Money(5200), b.TotalPrice)
	assert.Equal(t, domain.Money(4400), b.PartnerEarnings)
}

func TestBookingService_CreateBooking_Validation(t *testing.T) {
	cases := map[string]func(in *domain.CreateBookingInput){
		"no services":          func(in *domain.CreateBookingInput) { in.Services = nil },
		"home without address": func(in *domain.CreateBookingInput) { in.Address = nil },
		"card without source":  func(in *domain.CreateBookingInput) { in.PaymentSourceID = "" },
		"unknown method":       func(in *domain.CreateBookingInput) { in.PaymentMethod = "bitcoin" },
		"zero price": func(in *domain.CreateBookingInput) {
			in.Services = []domain.Service{{ID: "s1", Name: "Free", Price: 0}}
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			in := homeInput(domain.PaymentMethodCard)
			mutate(&in)

			_, err := h.svc.CreateBooking(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_CreateBooking_RateLimited(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
		require.NoError(t, err)
	}

	_, err := h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	h.clock.Advance(61 * time.Second)
	_, err = h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	assert.NoError(t, err)
}

func TestBookingService_GetBookingByID_NotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.GetBookingByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ConfirmCashPayment(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetArrived, domain.PaymentMethodCash)

	got, err := h.svc.ConfirmCashPayment(context.Background(), b.ID, partnerID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, got.PaymentStatus)
	require.NotNil(t, got.PaidAt)

	again, err := h.svc.ConfirmCashPayment(context.Background(), b.ID, partnerID)
	require.NoError(t, err)
	assert.Equal(t, got.Version, again.Version)
}

func TestBookingService_ConfirmCashPayment_Rejects(t *testing.T) {
	h := newHarness(t)
	card := seed(t, h, domain.TargetArrived, domain.PaymentMethodCard)

	_, err := h.svc.ConfirmCashPayment(context.Background(), card.ID, partnerID)
	assert.ErrorIs(t, err, domain.ErrValidation)

	h2 := newHarness(t)
	early := seed(t, h2, domain.TargetAccepted, domain.PaymentMethodCash)
	_, err = h2.svc.ConfirmCashPayment(context.Background(), early.ID, partnerID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = h2.svc.ConfirmCashPayment(context.Background(), early.ID, "someone-else")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_AttachEvidence(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetInProgress, domain.PaymentMethodCash)

	got, err := h.svc.AttachEvidence(context.Background(), b.ID, partnerID,
		[]string{"https://cdn.example.com/before.jpg"}, []string{"https://cdn.example.com/after.jpg"})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/before.jpg"}, got.EvidencePhotos.Before)
	assert.Equal(t, []string{"https://cdn.example.com/after.jpg"}, got.EvidencePhotos.After)

	_, err = h.svc.AttachEvidence(context.Background(), b.ID, partnerID, []string{"not a url"}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.svc.AttachEvidence(context.Background(), b.ID, partnerID, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListByCustomerAndPartner(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	require.NoError(t, err)
	h.clock.Advance(time.Second)
	_, err = h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	require.NoError(t, err)

	mine, err := h.svc.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.True(t, mine[0].CreatedAt.After(mine[1].CreatedAt))

	theirs, err := h.svc.ListByPartner(ctx, partnerID)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	none, err := h.svc.ListByCustomer(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
