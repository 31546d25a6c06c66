package ports

import (
	"context"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

type AuthorizeRequest struct {
	// Reference is the booking id and doubles as the provider idempotency key.
	Reference string
	Amount    domain.Money
	Method    domain.PaymentMethod
	SourceID  string
}

// PaymentProvider returns domain.ErrPaymentDeclined for permanent rejections;
// any other error is treated as transient.
type PaymentProvider interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (holdID string, err error)
	Capture(ctx context.Context, holdID string) (chargeID string, err error)
	Void(ctx context.Context, holdID string) error
	Refund(ctx context.Context, chargeID string, amount domain.Money) (refundID string, err error)
}
