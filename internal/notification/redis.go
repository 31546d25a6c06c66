package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type envelope struct {
	Origin string              `json:"origin"`
	Event  domain.BookingEvent `json:"event"`
}

// RedisRelay shares booking events between API instances over Redis pub/sub,
// so a subscriber on one instance sees transitions committed on another.
type RedisRelay struct {
	client     *redis.Client
	channel    string
	instanceID string
	local      *Hub
	logger     logger.Logger
}

func NewRedisRelay(client *redis.Client, channel string, local *Hub, logger logger.Logger) *RedisRelay {
	return &RedisRelay{
		client:     client,
		channel:    channel,
		instanceID: uuid.NewString(),
		local:      local,
		logger:     logger,
	}
}

func (r *RedisRelay) Publish(ctx context.Context, e domain.BookingEvent) {
	payload, err := json.Marshal(envelope{Origin: r.instanceID, Event: e})
	if err != nil {
		r.logger.Error("failed to encode booking event", logger.String("error", err.Error()))
		return
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		r.logger.Warn("failed to relay booking event",
			logger.String("booking_id", e.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

// Run forwards events from other instances into the local hub until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}

	r.logger.Info("redis relay started",
		logger.String("channel", r.channel),
		logger.String("instance_id", r.instanceID),
	)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("redis relay stopped")
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(ctx, msg.Payload)
		}
	}
}

func (r *RedisRelay) handle(ctx context.Context, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		r.logger.Warn("malformed relay message", logger.String("error", err.Error()))
		return
	}
	// свои события уже доставлены локально
	if env.Origin == r.instanceID {
		return
	}
	r.local.Publish(ctx, env.Event)
}

func (r *RedisRelay) Close() error {
	return r.client.Close()
}
