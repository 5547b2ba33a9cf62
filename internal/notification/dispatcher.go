package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// Dispatcher publishes user-facing notification events to a topic exchange.
// Delivery channels (email, push, sms) consume from the exchange; this side
// only guarantees the envelope reaches the broker. Publishing is
// fire-and-forget: a broker outage is logged, never surfaced to the caller.
type Dispatcher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

type envelope struct {
	Event          string         `json:"event"`
	Version        int            `json:"version"`
	OccurredAt     time.Time      `json:"occurred_at"`
	UserID         string         `json:"user_id"`
	Payload        map[string]any `json:"payload,omitempty"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
}

// NewDispatcher connects to the broker and declares the exchange. An empty
// url disables dispatch, matching local setups without a broker.
func NewDispatcher(url, exchange string, logger logger.Logger) (*Dispatcher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, notifications disabled")
		return &Dispatcher{logger: logger}, nil
	}

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

	return &Dispatcher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (d *Dispatcher) Notify(ctx context.Context, userID, event string, payload map[string]any, idempotencyKey string) {
	if d.ch == nil {
		d.logger.Debug("notification skipped (dispatcher disabled)",
			logger.String("event", event),
			logger.String("user_id", userID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		d.logger.Debug("notification skipped (context cancelled)",
			logger.String("event", event),
			logger.String("user_id", userID),
		)
		return
	}

	body, err := json.Marshal(envelope{
		Event:          event,
		Version:        1,
		OccurredAt:     time.Now().UTC(),
		UserID:         userID,
		Payload:        payload,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		d.logger.Error("failed to marshal notification",
			logger.String("event", event),
			logger.String("error", err.Error()),
		)
		return
	}

	err = d.ch.PublishWithContext(ctx, d.exchange, event, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    idempotencyKey,
		Body:         body,
	})
	if err != nil {
		d.logger.Error("failed to publish notification",
			logger.String("event", event),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
}

func (d *Dispatcher) Close() error {
	if d.ch != nil {
		_ = d.ch.Close()
	}
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}
