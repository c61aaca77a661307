package notify

import (
	"context"
	"log/slog"
	"strings"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

//go:generate mockgen -source=notify.go -destination=../../../tests/mock/notify/notify.go -package=notifymock

// Sender delivers one message. Implementations live in infra/mailer.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome reports what happened to a best-effort notification.
type Outcome struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func Sent() Outcome                 { return Outcome{Status: StatusSent} }
func Skipped(reason string) Outcome { return Outcome{Status: StatusSkipped, Reason: reason} }
func Failed(reason string) Outcome  { return Outcome{Status: StatusFailed, Reason: reason} }
func (o Outcome) IsSent() bool      { return o.Status == StatusSent }
func (o Outcome) IsFailed() bool    { return o.Status == StatusFailed }
func (o Outcome) IsSkipped() bool   { return o.Status == StatusSkipped }

const reasonNoEmail = "recipient has no email address"

// Dispatcher sends messages and turns transport errors into an Outcome.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger
}

func NewDispatcher(sender Sender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, logger: logger}
}

func (d *Dispatcher) Deliver(ctx context.Context, msg Message) Outcome {
	if strings.TrimSpace(msg.To) == "" {
		return Skipped(reasonNoEmail)
	}
	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.ErrorContext(ctx, "failed to send email",
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()))
		return Failed(err.Error())
	}
	d.logger.DebugContext(ctx, "email sent", slog.String("subject", msg.Subject))
	return Sent()
}
