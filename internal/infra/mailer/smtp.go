package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/notify"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	addr     string
	from     string
	auth     smtp.Auth
	timeout  time.Duration
	sendMail sendMailFunc
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		from:     cfg.From,
		auth:     auth,
		timeout:  cfg.SendTimeout,
		sendMail: smtp.SendMail,
	}
}

// Send gives up when ctx or the send timeout expires; the dial itself is not interrupted.
func (s *SMTPSender) Send(ctx context.Context, msg notify.Message) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(s.addr, s.auth, s.from, []string{msg.To}, s.format(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s: %w", msg.To, ctx.Err())
	}
}

var (
	headerLineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	bodyLineBreaks   = strings.NewReplacer("\r\n", "\r\n", "\r", "\r\n", "\n", "\r\n")
)

// format folds line breaks out of header values and writes every body line ending as CRLF.
func (s *SMTPSender) format(msg notify.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerLineBreaks.Replace(s.from))
	fmt.Fprintf(&b, "To: %s\r\n", headerLineBreaks.Replace(msg.To))
	fmt.Fprintf(&b, "Subject: %s\r\n", headerLineBreaks.Replace(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(bodyLineBreaks.Replace(msg.Body))
	return []byte(b.String())
}
