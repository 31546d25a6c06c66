package notification

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// RabbitPublisher emits booking events to a topic exchange for downstream
// consumers (push delivery, partner payouts, analytics).
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewRabbitPublisher(url, exchange string, logger logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, e domain.BookingEvent) {
	body, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("failed to encode booking event", logger.String("error", err.Error()))
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey(e), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("%s:%d", e.BookingID, e.Version),
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
	if err != nil {
		p.logger.Warn("failed to publish booking event",
			logger.String("booking_id", e.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// routingKey is booking.<state>, e.g. booking.accepted or booking.disputed.
func routingKey(e domain.BookingEvent) string {
	return "booking." + string(e.State)
}
