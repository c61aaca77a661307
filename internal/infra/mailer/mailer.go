package mailer

import (
	"fmt"
	"log/slog"

	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/notify"
)

// Envelope is the JSON body of a queued email.
type Envelope struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func envelopeOf(msg notify.Message) Envelope {
	return Envelope{To: msg.To, Subject: msg.Subject, Body: msg.Body}
}

func (e Envelope) Message() notify.Message {
	return notify.Message{To: e.To, Subject: e.Subject, Body: e.Body}
}

// New builds the Sender selected by MAIL_DRIVER. The returned func releases its connections.
func New(cfg config.MailConfig, logger *slog.Logger) (notify.Sender, func(), error) {
	switch cfg.Driver {
	case config.MailDriverSMTP:
		return NewSMTPSender(cfg), func() {}, nil
	case config.MailDriverAMQP:
		p, err := DialPublisher(cfg.AMQPURL, cfg.Queue, logger)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case config.MailDriverLog, "":
		return NewLogSender(logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.Driver)
	}
}
