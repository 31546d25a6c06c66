package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

// MemoryBookingRepository keeps bookings in process. Used for local runs and tests.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]*domain.Booking)}
}

func (r *MemoryBookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; ok {
		return domain.ErrConflict
	}
	r.bookings[b.ID] = b.Clone()
	return nil
}

func (r *MemoryBookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (r *MemoryBookingRepository) Update(_ context.Context, b *domain.Booking, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.bookings[b.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if cur.Version != expectedVersion {
		return domain.ErrConflict
	}
	r.bookings[b.ID] = b.Clone()
	return nil
}

func (r *MemoryBookingRepository) ListByCustomer(_ context.Context, customerID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *MemoryBookingRepository) ListByPartner(_ context.Context, partnerID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.BarberID == partnerID }), nil
}

func (r *MemoryBookingRepository) CountCreatedSince(_ context.Context, customerID string, since time.Time) (int, error) {
	return len(r.filter(func(b *domain.Booking) bool {
		return b.CustomerID == customerID && !b.CreatedAt.Before(since)
	})), nil
}

func (r *MemoryBookingRepository) ListPendingCreatedBefore(_ context.Context, before time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusPending && !b.CreatedAt.After(before)
	}), nil
}

func (r *MemoryBookingRepository) ListAwaitingConfirmation(_ context.Context, completedBefore time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return domain.StateOf(b) == domain.TargetCompleted &&
			b.CompletedAt != nil && !b.CompletedAt.After(completedBefore)
	}), nil
}

func (r *MemoryBookingRepository) ListUnsettled(_ context.Context, updatedBefore time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.UpdatedAt.Before(updatedBefore) && b.PendingSettlement() != domain.SettleNone
	}), nil
}

func (r *MemoryBookingRepository) filter(keep func(b *domain.Booking) bool) []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range r.bookings {
		if keep(b) {
			res = append(res, b.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res
}
