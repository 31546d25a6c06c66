package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireBooking_OnlyAfterWindow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodCash)

	h.clock.Advance(2*time.Minute + 59*time.Second)
	_, err := h.svc.ExpireBooking(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	h.clock.Advance(time.Second)
	got, err := h.svc.ExpireBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusExpired, got.Status)
	require.NotNil(t, got.ExpiredAt)
}

func TestExpireBooking_AcceptedIsLeftAlone(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetAccepted, domain.PaymentMethodCash)

	h.clock.Advance(10 * time.Minute)
	got, err := h.svc.ExpireBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, got.Status)
	assert.Equal(t, b.Version, got.Version)
}

func TestAutoConfirmBooking_FiresAtWindow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetCompleted, domain.PaymentMethodCard)

	h.payments.EXPECT().Capture(mock.Anything, "chrg_hold_1").Return("chrg_hold_1", nil).Once()

	h.clock.Advance(2*time.Hour - time.Second)
	_, err := h.svc.AutoConfirmBooking(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	h.clock.Advance(2 * time.Second)
	got, err := h.svc.AutoConfirmBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed())
	assert.Equal(t, domain.PaymentStatusCompleted, got.PaymentStatus)
}

func TestAutoConfirmBooking_CustomerAlreadyConfirmed(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetConfirmed, domain.PaymentMethodCash)

	h.clock.Advance(3 * time.Hour)
	got, err := h.svc.AutoConfirmBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.Version, got.Version)
}

func TestExpireOverdue(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first, err := h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	require.NoError(t, err)
	second, err := h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	require.NoError(t, err)

	h.clock.Advance(3 * time.Minute)
	fresh, err := h.svc.CreateBooking(ctx, homeInput(domain.PaymentMethodCash))
	require.NoError(t, err)

	expired, err := h.svc.ExpireOverdue(ctx)

	require.NoError(t, err)
	require.Len(t, expired, 2)
	ids := []string{expired[0].ID, expired[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
	assert.Equal(t, domain.BookingStatusPending, h.get(t, fresh.ID).Status)
}

func TestAutoConfirmOverdue(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetCompleted, domain.PaymentMethodCash)
	seed(t, h, domain.TargetDisputed, domain.PaymentMethodCash)

	confirmed, err := h.svc.AutoConfirmOverdue(ctx)
	require.NoError(t, err)
	assert.Empty(t, confirmed)

	h.clock.Advance(2 * time.Hour)
	confirmed, err = h.svc.AutoConfirmOverdue(ctx)

	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, b.ID, confirmed[0].ID)
	assert.True(t, confirmed[0].IsConfirmed())
}

func TestRescheduleDeadlines(t *testing.T) {
	h := newHarness(t)
	pending := seed(t, h, domain.TargetPending, domain.PaymentMethodCash)
	completed := seed(t, h, domain.TargetCompleted, domain.PaymentMethodCash)
	seed(t, h, domain.TargetConfirmed, domain.PaymentMethodCash)

	n, err := h.svc.RescheduleDeadlines(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, h.expiries, 1)
	assert.Equal(t, scheduled{pending.ID, pending.CreatedAt.Add(3 * time.Minute)}, h.expiries[0])
	require.Len(t, h.autoConfirm, 1)
	assert.Equal(t, scheduled{completed.ID, completed.CompletedAt.Add(2 * time.Hour)}, h.autoConfirm[0])
}
