package notification

import (
	"context"
	"sync"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Fanout delivers to the local hub inline and hands events to remote
// transports through a single ordered queue, so commits never wait on the network.
type Fanout struct {
	local   ports.ChangePublisher
	remotes []ports.ChangePublisher
	queue   chan domain.BookingEvent
	logger  logger.Logger

	once sync.Once
	done chan struct{}
}

func NewFanout(local ports.ChangePublisher, queueSize int, logger logger.Logger, remotes ...ports.ChangePublisher) *Fanout {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Fanout{
		local:   local,
		remotes: remotes,
		queue:   make(chan domain.BookingEvent, queueSize),
		logger:  logger,
		done:    make(chan struct{}),
	}
}

func (f *Fanout) Publish(ctx context.Context, e domain.BookingEvent) {
	f.local.Publish(ctx, e)
	if len(f.remotes) == 0 {
		return
	}

	select {
	case f.queue <- e:
	default:
		f.logger.Warn("remote event queue full, event dropped",
			logger.String("booking_id", e.BookingID),
			logger.Int64("version", e.Version),
		)
	}
}

// Run drains the queue until ctx is done, then flushes what is left.
func (f *Fanout) Run(ctx context.Context) {
	defer f.once.Do(func() { close(f.done) })

	for {
		select {
		case e := <-f.queue:
			f.forward(ctx, e)
		case <-ctx.Done():
			f.flush()
			return
		}
	}
}

// Done is closed after Run returns.
func (f *Fanout) Done() <-chan struct{} {
	return f.done
}

func (f *Fanout) flush() {
	ctx := context.Background()
	for {
		select {
		case e := <-f.queue:
			f.forward(ctx, e)
		default:
			return
		}
	}
}

func (f *Fanout) forward(ctx context.Context, e domain.BookingEvent) {
	for _, r := range f.remotes {
		r.Publish(context.WithoutCancel(ctx), e)
	}
}
