// Package events publishes booking lifecycle events to a RabbitMQ topic
// exchange so downstream consumers (search indexers, analytics) can react
// without coupling to the service.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/domain"
)

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

// NewPublisher connects and declares the exchange. An empty URL disables
// publishing; every call becomes a logged no-op.
func NewPublisher(url, exchange string, logger logger.Logger) (*Publisher, error) {
	if url == "" {
		logger.Warn("amqp url is empty, event publishing disabled")
		return &Publisher{exchange: exchange, logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *Publisher) PublishBookingEvent(ctx context.Context, e domain.BookingEvent) error {
	if p.ch == nil {
		p.logger.Debug("event publishing skipped (publisher disabled)",
			logger.String("booking_id", e.BookingID),
		)
		return nil
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err = p.ch.PublishWithContext(
		ctx,
		p.exchange,
		RoutingKey(e.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   e.BookingID,
			Timestamp:   e.OccurredAt,
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

// RoutingKey is "booking.<type>", e.g. booking.approved.
func RoutingKey(t domain.BookingEventType) string {
	return "booking." + string(t)
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}
