package notification

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func event(id string, version int64, state domain.Target) domain.BookingEvent {
	return domain.BookingEvent{
		BookingID:  id,
		CustomerID: "cust-1",
		PartnerID:  "barber-1",
		Version:    version,
		State:      state,
	}
}

func receive(t *testing.T, s *Subscription) domain.BookingEvent {
	t.Helper()
	select {
	case e := <-s.Events():
		return e
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
		return domain.BookingEvent{}
	}
}

func assertEmpty(t *testing.T, s *Subscription) {
	t.Helper()
	select {
	case e := <-s.Events():
		t.Fatalf("unexpected event %s v%d", e.BookingID, e.Version)
	default:
	}
}

func TestHub_FilterByBookingAndParty(t *testing.T) {
	hub := NewHub(8, newTestLogger(t))
	byBooking := hub.Subscribe(Filter{BookingID: "b1"})
	byPartner := hub.Subscribe(Filter{PartnerID: "barber-1"})
	other := hub.Subscribe(Filter{CustomerID: "cust-9"})

	hub.Publish(context.Background(), event("b1", 2, domain.TargetAccepted))
	hub.Publish(context.Background(), event("b2", 1, domain.TargetPending))

	assert.Equal(t, "b1", receive(t, byBooking).BookingID)
	assertEmpty(t, byBooking)

	assert.Equal(t, "b1", receive(t, byPartner).BookingID)
	assert.Equal(t, "b2", receive(t, byPartner).BookingID)

	assertEmpty(t, other)
}

func TestHub_DropsStaleVersions(t *testing.T) {
	hub := NewHub(8, newTestLogger(t))
	sub := hub.Subscribe(Filter{BookingID: "b1"})

	hub.Publish(context.Background(), event("b1", 3, domain.TargetOnTheWay))
	hub.Publish(context.Background(), event("b1", 2, domain.TargetAccepted))
	hub.Publish(context.Background(), event("b1", 3, domain.TargetOnTheWay))
	hub.Publish(context.Background(), event("b1", 4, domain.TargetArrived))

	assert.Equal(t, int64(3), receive(t, sub).Version)
	assert.Equal(t, int64(4), receive(t, sub).Version)
	assertEmpty(t, sub)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(1, newTestLogger(t))
	sub := hub.Subscribe(Filter{})

	done := make(chan struct{})
	go func() {
		for v := int64(1); v <= 5; v++ {
			hub.Publish(context.Background(), event("b1", v, domain.TargetPending))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Equal(t, int64(1), receive(t, sub).Version)

	// после потери события подписчик продолжает получать более новые
	hub.Publish(context.Background(), event("b1", 6, domain.TargetAccepted))
	assert.Equal(t, int64(6), receive(t, sub).Version)
}

func TestHub_CloseUnsubscribes(t *testing.T) {
	hub := NewHub(4, newTestLogger(t))
	sub := hub.Subscribe(Filter{})
	require.Equal(t, 1, hub.Subscribers())

	sub.Close()
	sub.Close()

	assert.Equal(t, 0, hub.Subscribers())
	hub.Publish(context.Background(), event("b1", 1, domain.TargetPending))
	_, ok := <-sub.Events()
	assert.False(t, ok)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.BookingEvent
}

func (r *recordingPublisher) Publish(_ context.Context, e domain.BookingEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingPublisher) versions() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]int64, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Version)
	}
	return res
}

func TestFanout_LocalInlineRemoteOrdered(t *testing.T) {
	local := &recordingPublisher{}
	remote := &recordingPublisher{}
	f := NewFanout(local, 16, newTestLogger(t), remote)

	ctx, cancel := context.WithCancel(context.Background())
	go f.Run(ctx)

	for v := int64(1); v <= 5; v++ {
		f.Publish(context.Background(), event("b1", v, domain.TargetPending))
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, local.versions())

	require.Eventually(t, func() bool { return len(remote.versions()) == 5 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, remote.versions())

	cancel()
	<-f.Done()
}

func TestRedisRelay_HandleSkipsOwnEvents(t *testing.T) {
	hub := NewHub(4, newTestLogger(t))
	sub := hub.Subscribe(Filter{})
	relay := NewRedisRelay(nil, "bookings", hub, newTestLogger(t))

	own, err := json.Marshal(envelope{Origin: relay.instanceID, Event: event("b1", 2, domain.TargetAccepted)})
	require.NoError(t, err)
	foreign, err := json.Marshal(envelope{Origin: "other-instance", Event: event("b1", 3, domain.TargetOnTheWay)})
	require.NoError(t, err)

	relay.handle(context.Background(), string(own))
	relay.handle(context.Background(), "{not json")
	relay.handle(context.Background(), string(foreign))

	assert.Equal(t, int64(3), receive(t, sub).Version)
	assertEmpty(t, sub)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "booking.disputed", routingKey(event("b1", 7, domain.TargetDisputed)))
	assert.Equal(t, "booking.on_the_way", routingKey(event("b1", 3, domain.TargetOnTheWay)))
}

func TestTelegramAlerter_DisabledWithoutToken(t *testing.T) {
	alerter, err := NewTelegramAlerter("", 0, newTestLogger(t))
	require.NoError(t, err)

	reason := "barber never showed up"
	b := &domain.Booking{ID: "b1", BookingNumber: "MG-ABCDEF12", TotalPrice: 8900, DisputeReason: &reason}

	alerter.NotifyDisputeOpened(context.Background(), b)
	alerter.NotifySettlementFailed(context.Background(), b, "capture", errors.New("declined"))
}

func TestAlertTexts(t *testing.T) {
	reason := "barber never showed up"
	b := &domain.Booking{
		BookingNumber: "MG-ABCDEF12",
		CustomerID:    "cust-1",
		BarberID:      "barber-1",
		TotalPrice:    8900,
		PaymentMethod: domain.PaymentMethodCard,
		PaymentStatus: domain.PaymentStatusAuthorized,
		DisputeReason: &reason,
	}

	dispute := disputeText(b)
	assert.Contains(t, dispute, "MG-ABCDEF12")
	assert.Contains(t, dispute, "RM 89.00")
	assert.Contains(t, dispute, reason)

	failed := settlementFailedText(b, "capture", errors.New("expired_charge"))
	assert.Contains(t, failed, "Payment capture failed")
	assert.Contains(t, failed, "expired_charge")
}
