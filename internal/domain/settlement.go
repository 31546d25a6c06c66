package domain

type SettlementStep string

const (
	SettleNone      SettlementStep = ""
	SettleAuthorize SettlementStep = "authorize"
	SettleCapture   SettlementStep = "capture"
	SettleRelease   SettlementStep = "release"
	SettleRefund    SettlementStep = "refund"
	SettleComplete  SettlementStep = "complete"
)

// PendingSettlement returns the payment action the booking still owes, if any.
// Cash is settled only by the partner's collection confirmation.
func (b *Booking) PendingSettlement() SettlementStep {
	if b.PaymentMethod == PaymentMethodCash {
		return SettleNone
	}

	unwind := b.Status.IsClosed() || b.DisputeResolution == ResolutionCustomer

	switch b.PaymentStatus {
	case PaymentStatusRefundPending:
		return SettleRefund
	case PaymentStatusAuthorized:
		if unwind {
			return SettleRelease
		}
		if b.CaptureDue() {
			return SettleCapture
		}
	case PaymentStatusCompleted:
		if unwind {
			return SettleRefund
		}
	case PaymentStatusPending:
		// accept закоммичен, а холд так и не поставлен
		if b.Status == BookingStatusAccepted && b.PaymentMethod.RequiresHold() {
			return SettleAuthorize
		}
		if !unwind && !b.PaymentMethod.RequiresHold() && b.CaptureDue() {
			return SettleComplete
		}
	}
	return SettleNone
}
