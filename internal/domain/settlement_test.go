package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completedBooking(method PaymentMethod, ps PaymentStatus) *Booking {
	now := time.Now()
	b := validBooking()
	b.Status = BookingStatusCompleted
	b.AcceptedAt, b.OnTheWayAt, b.ArrivedAt, b.StartedAt, b.CompletedAt = ptr(now), ptr(now), ptr(now), ptr(now), ptr(now)
	b.PaymentMethod = method
	b.PaymentStatus = ps
	return b
}

func TestPendingSettlement_CaptureAfterConfirmation(t *testing.T) {
	b := completedBooking(PaymentMethodCard, PaymentStatusAuthorized)
	assert.Equal(t, SettleNone, b.PendingSettlement())

	b.CompletionConfirmedAt = ptr(time.Now())
	assert.Equal(t, SettleCapture, b.PendingSettlement())

	b.PaymentStatus = PaymentStatusCompleted
	assert.Equal(t, SettleNone, b.PendingSettlement())
}

func TestPendingSettlement_DisputeBlocksCapture(t *testing.T) {
	b := completedBooking(PaymentMethodCard, PaymentStatusAuthorized)
	b.DisputedAt = ptr(time.Now())

	assert.Equal(t, SettleNone, b.PendingSettlement())
}

func TestPendingSettlement_CustomerResolution(t *testing.T) {
	b := completedBooking(PaymentMethodFPX, PaymentStatusAuthorized)
	b.DisputeResolvedAt = ptr(time.Now())
	b.DisputeResolution = ResolutionCustomer
	assert.Equal(t, SettleRelease, b.PendingSettlement())

	b.PaymentStatus = PaymentStatusCompleted
	assert.Equal(t, SettleRefund, b.PendingSettlement())
}

func TestPendingSettlement_ClosedBooking(t *testing.T) {
	b := validBooking()
	b.Status = BookingStatusCancelled
	b.PaymentStatus = PaymentStatusAuthorized
	assert.Equal(t, SettleRelease, b.PendingSettlement())

	b.PaymentStatus = PaymentStatusReversed
	assert.Equal(t, SettleNone, b.PendingSettlement())
}

func TestPendingSettlement_WalletAndCash(t *testing.T) {
	wallet := completedBooking(PaymentMethodEwallet, PaymentStatusPending)
	wallet.CompletionConfirmedAt = ptr(time.Now())
	assert.Equal(t, SettleComplete, wallet.PendingSettlement())

	cash := completedBooking(PaymentMethodCash, PaymentStatusPending)
	cash.CompletionConfirmedAt = ptr(time.Now())
	assert.Equal(t, SettleNone, cash.PendingSettlement())
}

func TestPendingSettlement_AcceptedWithoutHold(t *testing.T) {
	b := validBooking()
	b.Status = BookingStatusAccepted
	b.AcceptedAt = ptr(time.Now())
	b.PaymentMethod = PaymentMethodCard
	b.PaymentStatus = PaymentStatusPending
	assert.Equal(t, SettleAuthorize, b.PendingSettlement())

	b.PaymentMethod = PaymentMethodFPX
	assert.Equal(t, SettleAuthorize, b.PendingSettlement())

	b.PaymentStatus = PaymentStatusAuthorized
	assert.Equal(t, SettleNone, b.PendingSettlement())

	b.PaymentMethod = PaymentMethodEwallet
	b.PaymentStatus = PaymentStatusPending
	assert.Equal(t, SettleNone, b.PendingSettlement())
}
