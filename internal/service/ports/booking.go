package ports

import (
	"context"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Update stores b only if the stored version still equals expectedVersion,
	// otherwise it returns domain.ErrConflict.
	Update(ctx context.Context, b *domain.Booking, expectedVersion int64) error
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error)
	CountCreatedSince(ctx context.Context, customerID string, since time.Time) (int, error)
	ListPendingCreatedBefore(ctx context.Context, before time.Time) ([]*domain.Booking, error)
	ListAwaitingConfirmation(ctx context.Context, completedBefore time.Time) ([]*domain.Booking, error)
	ListUnsettled(ctx context.Context, updatedBefore time.Time) ([]*domain.Booking, error)
}
