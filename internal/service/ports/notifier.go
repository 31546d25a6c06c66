package ports

import (
	"context"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

type ChangePublisher interface {
	Publish(ctx context.Context, e domain.BookingEvent)
}

type AdminAlerter interface {
	NotifyDisputeOpened(ctx context.Context, b *domain.Booking)
	NotifySettlementFailed(ctx context.Context, b *domain.Booking, op string, cause error)
}
