package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errProviderDown = errors.New("omise: 503 service unavailable")

func waitAlert(t *testing.T, h *harness, want string) {
	t.Helper()
	select {
	case got := <-h.alerts:
		assert.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("alert %q not sent", want)
	}
}

func captured(b *domain.Booking) {
	b.PaymentStatus = domain.PaymentStatusCompleted
	b.PaymentChargeID = "chrg_1"
}

func TestSettlement_CardLifecycleCapturesOnConfirmation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodCard)

	h.payments.EXPECT().Authorize(mock.Anything, ports.AuthorizeRequest{
		Reference: b.ID,
		Amount:    3700,
		Method:    domain.PaymentMethodCard,
		SourceID:  "tokn_test_1",
	}).Return("chrg_hold_1", nil).Once()
	h.payments.EXPECT().Capture(mock.Anything, "chrg_hold_1").Return("chrg_hold_1", nil).Once()

	partner := actors[domain.RolePartner]
	accepted, err := h.svc.ApplyTransition(ctx, b.ID, partner, domain.TargetAccepted, domain.TransitionPayload{})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusAuthorized, accepted.PaymentStatus)
	assert.Contains(t, h.cancelled, b.ID)

	for _, target := range []domain.Target{domain.TargetOnTheWay, domain.TargetArrived, domain.TargetInProgress, domain.TargetCompleted} {
		_, err = h.svc.ApplyTransition(ctx, b.ID, partner, target, domain.TransitionPayload{})
		require.NoError(t, err, target)
	}
	assert.Equal(t, domain.PaymentStatusAuthorized, h.get(t, b.ID).PaymentStatus)

	got, err := h.svc.ConfirmServiceCompletion(ctx, b.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, got.PaymentStatus)
	assert.Equal(t, "chrg_hold_1", got.PaymentChargeID)
	require.NotNil(t, got.PaidAt)
	assert.True(t, got.IsTerminal())
}

func TestSettlement_AuthorizationDeclinedRollsBackAccept(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodCard)

	h.payments.EXPECT().Authorize(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: insufficient_fund", domain.ErrPaymentDeclined)).Once()

	_, err := h.svc.ApplyTransition(context.Background(), b.ID, actors[domain.RolePartner], domain.TargetAccepted, domain.TransitionPayload{})

	assert.ErrorIs(t, err, domain.ErrPaymentAuthorizationFailed)

	stored := h.get(t, b.ID)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	assert.Equal(t, domain.PaymentStatusPending, stored.PaymentStatus)
	assert.Nil(t, stored.AcceptedAt)
	assert.Equal(t, int64(3), stored.Version)
	require.Len(t, h.expiries, 1)
	assert.Equal(t, b.CreatedAt.Add(3*time.Minute), h.expiries[0].at)
}

func TestSettlement_AuthorizationRetriesTransientFailure(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodFPX)

	var calls atomic.Int32
	h.payments.EXPECT().Authorize(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ports.AuthorizeRequest) (string, error) {
			if calls.Add(1) == 1 {
				return "", errProviderDown
			}
			return "src_hold_1", nil
		})

	got, err := h.svc.ApplyTransition(context.Background(), b.ID, actors[domain.RolePartner], domain.TargetAccepted, domain.TransitionPayload{})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, domain.PaymentStatusAuthorized, got.PaymentStatus)
	assert.Equal(t, "src_hold_1", got.PaymentHoldID)
}

func TestSettlement_ProviderUnavailable(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodCard)

	h.payments.EXPECT().Authorize(mock.Anything, mock.Anything).Return("", errProviderDown)

	_, err := h.svc.ApplyTransition(context.Background(), b.ID, actors[domain.RolePartner], domain.TargetAccepted, domain.TransitionPayload{})

	assert.ErrorIs(t, err, domain.ErrPaymentProviderUnavailable)
	stored := h.get(t, b.ID)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	assert.Equal(t, domain.PaymentStatusPending, stored.PaymentStatus)
}

func TestSettlement_CancelReleasesHold(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetAccepted, domain.PaymentMethodCard)

	h.payments.EXPECT().Void(mock.Anything, "chrg_hold_1").Return(nil).Once()

	got, err := h.svc.ApplyTransition(context.Background(), b.ID, actors[domain.RoleCustomer], domain.TargetCancelled, domain.TransitionPayload{})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Equal(t, domain.PaymentStatusReversed, got.PaymentStatus)
}

func TestSettlement_RejectWithoutHoldTouchesNoProvider(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodCard)

	got, err := h.svc.ApplyTransition(context.Background(), b.ID, actors[domain.RolePartner], domain.TargetRejected,
		domain.TransitionPayload{Reason: "fully booked"})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, got.Status)
	assert.Equal(t, domain.PaymentStatusPending, got.PaymentStatus)
	assert.Equal(t, "fully booked", got.CancellationReason)
}

func TestSettlement_CaptureFailureLeftForReconciler(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetCompleted, domain.PaymentMethodCard)

	var up atomic.Bool
	h.payments.EXPECT().Capture(mock.Anything, "chrg_hold_1").
		RunAndReturn(func(context.Context, string) (string, error) {
			if !up.Load() {
				return "", errProviderDown
			}
			return "chrg_hold_1", nil
		})

	got, err := h.svc.ConfirmServiceCompletion(ctx, b.ID, customerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsConfirmed())
	assert.Equal(t, domain.PaymentStatusAuthorized, got.PaymentStatus)
	assert.Equal(t, h.get(t, b.ID).Version, got.Version)

	up.Store(true)

	// в пределах grace-периода реконсилер бронь не трогает
	settled, err := h.svc.SettleOutstanding(ctx)
	require.NoError(t, err)
	assert.Empty(t, settled)

	h.clock.Advance(2 * time.Minute)
	settled, err = h.svc.SettleOutstanding(ctx)
	require.NoError(t, err)
	require.Len(t, settled, 1)
	assert.Equal(t, domain.PaymentStatusCompleted, settled[0].PaymentStatus)
}

func TestSettlement_DeclinedCaptureAlertsAdmin(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetCompleted, domain.PaymentMethodCard)

	h.payments.EXPECT().Capture(mock.Anything, "chrg_hold_1").
		Return("", fmt.Errorf("%w: expired_charge", domain.ErrPaymentDeclined)).Once()

	got, err := h.svc.ConfirmServiceCompletion(context.Background(), b.ID, customerID)

	require.NoError(t, err)
	assert.True(t, got.IsConfirmed())
	assert.Equal(t, domain.PaymentStatusAuthorized, got.PaymentStatus)
	waitAlert(t, h, "capture:"+b.ID)
}

func TestSettlement_CancelCommittedWhenVoidFails(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetAccepted, domain.PaymentMethodCard)

	h.payments.EXPECT().Void(mock.Anything, "chrg_hold_1").Return(errProviderDown)

	got, err := h.svc.ApplyTransition(context.Background(), b.ID, actors[domain.RoleCustomer], domain.TargetCancelled,
		domain.TransitionPayload{Reason: "changed my mind"})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Equal(t, domain.PaymentStatusAuthorized, got.PaymentStatus)
	assert.Equal(t, domain.SettleRelease, got.PendingSettlement())
}

func TestSettlement_WalletCompletesOnConfirmation(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetCompleted, domain.PaymentMethodEwallet)

	got, err := h.svc.ConfirmServiceCompletion(context.Background(), b.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, got.PaymentStatus)
	require.NotNil(t, got.PaidAt)
}

func TestSettlement_RefundAfterCaptureOnCustomerResolution(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetDisputed, domain.PaymentMethodCard, captured)

	h.payments.EXPECT().Refund(mock.Anything, "chrg_1", domain.Money(3700)).Return("rfnd_1", nil).Once()

	got, err := h.svc.ResolveDispute(ctx, b.ID, "admin-1", domain.ResolutionCustomer)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefundInitiated, got.PaymentStatus)
	assert.Equal(t, "rfnd_1", got.PaymentRefundID)

	got, err = h.svc.MarkRefundSettled(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.PaymentStatus)

	again, err := h.svc.MarkRefundSettled(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Version, again.Version)
}

func TestSettlement_WalletRefundedInPlace(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetDisputed, domain.PaymentMethodCredits, captured)

	got, err := h.svc.ResolveDispute(context.Background(), b.ID, "admin-1", domain.ResolutionCustomer)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.PaymentStatus)
}

func TestSettlement_StuckRefundPendingIsRetried(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	seed(t, h, domain.TargetCancelled, domain.PaymentMethodCard, func(b *domain.Booking) {
		b.PaymentStatus = domain.PaymentStatusRefundPending
		b.PaymentChargeID = "chrg_1"
	})

	h.payments.EXPECT().Refund(mock.Anything, "chrg_1", domain.Money(3700)).Return("rfnd_1", nil).Once()

	h.clock.Advance(5 * time.Minute)
	settled, err := h.svc.SettleOutstanding(ctx)

	require.NoError(t, err)
	require.Len(t, settled, 1)
	assert.Equal(t, domain.PaymentStatusRefundInitiated, settled[0].PaymentStatus)
}

func TestSettlement_MarkRefundSettledWithoutRefund(t *testing.T) {
	h := newHarness(t)
	b := seed(t, h, domain.TargetCompleted, domain.PaymentMethodCard)

	_, err := h.svc.MarkRefundSettled(context.Background(), b.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// unheld seeds an accept that was committed but never got its hold recorded.
func unheld(b *domain.Booking) {
	b.PaymentStatus = domain.PaymentStatusPending
	b.PaymentHoldID = ""
}

func TestSettlement_DeclineWhilePartnerMovesOn(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetPending, domain.PaymentMethodCard)
	partner := actors[domain.RolePartner]

	var moveErr error
	h.payments.EXPECT().Authorize(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ ports.AuthorizeRequest) {
			_, moveErr = h.svc.ApplyTransition(ctx, b.ID, partner, domain.TargetOnTheWay, domain.TransitionPayload{})
		}).
		Return("", fmt.Errorf("%w: insufficient_fund", domain.ErrPaymentDeclined)).Once()

	_, err := h.svc.ApplyTransition(ctx, b.ID, partner, domain.TargetAccepted, domain.TransitionPayload{})

	assert.ErrorIs(t, err, domain.ErrPaymentAuthorizationFailed)
	assert.ErrorIs(t, moveErr, domain.ErrInvalidTransition)

	stored := h.get(t, b.ID)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	assert.Equal(t, domain.PaymentStatusPending, stored.PaymentStatus)
	assert.Nil(t, stored.OnTheWayAt)

	_, err = h.svc.ApplyTransition(ctx, b.ID, partner, domain.TargetOnTheWay, domain.TransitionPayload{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSettlement_ReconcilerAuthorizesStrandedAccept(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetAccepted, domain.PaymentMethodCard, unheld)

	h.payments.EXPECT().Authorize(mock.Anything, ports.AuthorizeRequest{
		Reference: b.ID,
		Amount:    3700,
		Method:    domain.PaymentMethodCard,
		SourceID:  "tokn_test_1",
	}).Return("chrg_hold_2", nil).Once()

	settled, err := h.svc.SettleOutstanding(ctx)
	require.NoError(t, err)
	assert.Empty(t, settled)

	h.clock.Advance(2 * time.Minute)
	settled, err = h.svc.SettleOutstanding(ctx)

	require.NoError(t, err)
	require.Len(t, settled, 1)
	assert.Equal(t, domain.BookingStatusAccepted, settled[0].Status)
	assert.Equal(t, domain.PaymentStatusAuthorized, settled[0].PaymentStatus)
	assert.Equal(t, "chrg_hold_2", settled[0].PaymentHoldID)

	_, err = h.svc.ApplyTransition(ctx, b.ID, actors[domain.RolePartner], domain.TargetOnTheWay, domain.TransitionPayload{})
	require.NoError(t, err)
}

func TestSettlement_ReconcilerRevertsDeclinedStrandedAccept(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	b := seed(t, h, domain.TargetAccepted, domain.PaymentMethodFPX, unheld)

	h.payments.EXPECT().Authorize(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: payment_rejected", domain.ErrPaymentDeclined)).Once()

	h.clock.Advance(2 * time.Minute)
	settled, err := h.svc.SettleOutstanding(ctx)

	require.NoError(t, err)
	assert.Empty(t, settled)

	stored := h.get(t, b.ID)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	assert.Equal(t, domain.PaymentStatusPending, stored.PaymentStatus)
	assert.Nil(t, stored.AcceptedAt)
	assert.Equal(t, domain.SettleNone, stored.PendingSettlement())
	require.Len(t, h.expiries, 1)
}
