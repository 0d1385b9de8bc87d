package events

import (
	"context"
	"encoding/json"
	"fmt"

	"venue-booking/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher emits booking lifecycle events onto a durable topic exchange.
// A nil *Publisher is a no-op so the engine publishes unconditionally and
// disabled messaging costs nothing.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewPublisher connects to the broker, returning a nil (no-op) publisher
// when events are disabled in config.
func NewPublisher(config utils.EventsConfig, log *zap.Logger) (*Publisher, error) {
	if !config.Enabled {
		return nil, nil
	}

	conn, err := amqp.Dial(config.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(config.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: config.Exchange,
		log:      log.With(zap.String("component", "events")),
	}, nil
}

// Publish is best-effort: failures are logged, never propagated, because
// events are emitted after the owning transaction has committed.
func (p *Publisher) Publish(ctx context.Context, key string, event any) {
	if p == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to marshal event", zap.Error(err), zap.String("routing_key", key))
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.log.Error("Failed to publish event", zap.Error(err), zap.String("routing_key", key))
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
