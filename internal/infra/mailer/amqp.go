package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"room-reservation/internal/usecase/notify"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher queues messages on a durable queue for cmd/mailworker to deliver.
type Publisher struct {
	conn   *amqp.Connection
	ch     publishChannel
	queue  string
	logger *slog.Logger
}

func DialPublisher(url, queue string, logger *slog.Logger) (*Publisher, error) {
	conn, ch, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

func NewPublisher(ch publishChannel, queue string, logger *slog.Logger) *Publisher {
	return &Publisher{ch: ch, queue: queue, logger: logger}
}

func (p *Publisher) Send(ctx context.Context, msg notify.Message) error {
	body, err := json.Marshal(envelopeOf(msg))
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish email: %w", err)
	}
	return nil
}

func (p *Publisher) Close() {
	if err := p.ch.Close(); err != nil {
		p.logger.Warn("failed to close amqp channel", slog.String("error", err.Error()))
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.logger.Warn("failed to close amqp connection", slog.String("error", err.Error()))
		}
	}
}

func dialQueue(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}
	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	return conn, ch, nil
}
