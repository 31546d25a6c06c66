package notification

import (
	"context"
	"sync"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Filter selects events for a subscriber. Empty fields match anything.
type Filter struct {
	BookingID  string
	CustomerID string
	PartnerID  string
}

func (f Filter) Matches(e domain.BookingEvent) bool {
	if f.BookingID != "" && f.BookingID != e.BookingID {
		return false
	}
	if f.CustomerID != "" && f.CustomerID != e.CustomerID {
		return false
	}
	if f.PartnerID != "" && f.PartnerID != e.PartnerID {
		return false
	}
	return true
}

type Subscription struct {
	hub    *Hub
	filter Filter
	events chan domain.BookingEvent

	mu       sync.Mutex
	closed   bool
	versions map[string]int64
}

func (s *Subscription) Events() <-chan domain.BookingEvent {
	return s.events
}

func (s *Subscription) Close() {
	s.hub.remove(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

// deliver drops events older than what the subscriber already saw for the
// booking, so each booking's timeline only moves forward.
func (s *Subscription) deliver(e domain.BookingEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || e.Version <= s.versions[e.BookingID] {
		return true
	}
	select {
	case s.events <- e:
		s.versions[e.BookingID] = e.Version
		return true
	default:
		return false
	}
}

// Hub fans committed booking events out to in-process subscribers.
// Delivery is at-most-once: a slow subscriber loses events and re-fetches.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	logger logger.Logger
}

func NewHub(buffer int, logger logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func (h *Hub) Subscribe(f Filter) *Subscription {
	s := &Subscription{
		hub:      h,
		filter:   f,
		events:   make(chan domain.BookingEvent, h.buffer),
		versions: make(map[string]int64),
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) Publish(_ context.Context, e domain.BookingEvent) {
	h.mu.RLock()
	targets := make([]*Subscription, 0, len(h.subs))
	for s := range h.subs {
		if s.filter.Matches(e) {
			targets = append(targets, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if !s.deliver(e) {
			h.logger.Debug("subscriber buffer full, event dropped",
				logger.String("booking_id", e.BookingID),
				logger.Int64("version", e.Version),
			)
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}
