package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"room-reservation/internal/usecase/notify"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Worker drains the mail queue into a Sender. A failed send is requeued once; a message that
// cannot be decoded or fails on redelivery is dropped.
type Worker struct {
	sender notify.Sender
	logger *slog.Logger
}

func NewWorker(sender notify.Sender, logger *slog.Logger) *Worker {
	return &Worker{sender: sender, logger: logger}
}

// Consume opens its own connection and blocks until ctx is done or the channel closes.
func (w *Worker) Consume(ctx context.Context, url, queue string) error {
	conn, ch, err := dialQueue(url, queue)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer ch.Close()

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}
	deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	w.logger.Info("mail worker listening", slog.String("queue", queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("mail queue %s closed", queue)
			}
			w.Handle(ctx, d)
		}
	}
}

func (w *Worker) Handle(ctx context.Context, d amqp.Delivery) {
	var env Envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		w.logger.ErrorContext(ctx, "invalid mail envelope", slog.String("error", err.Error()))
		w.settle(ctx, d.Reject(false))
		return
	}

	if err := w.sender.Send(ctx, env.Message()); err != nil {
		w.logger.ErrorContext(ctx, "failed to deliver queued email",
			slog.String("to", env.To),
			slog.Bool("redelivered", d.Redelivered),
			slog.String("error", err.Error()))
		w.settle(ctx, d.Nack(false, !d.Redelivered))
		return
	}
	w.settle(ctx, d.Ack(false))
}

func (w *Worker) settle(ctx context.Context, err error) {
	if err != nil {
		w.logger.WarnContext(ctx, "failed to settle delivery", slog.String("error", err.Error()))
	}
}
