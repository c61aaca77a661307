package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/mailer"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/notify"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailSender,
		notify.NewDispatcher,
		NewComposer,
	),
)

func NewMailSender(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Sender, error) {
	sender, cleanup, err := mailer.New(cfg.Mail, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("mail sender ready", slog.String("driver", cfg.Mail.Driver))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
	return sender, nil
}

// NewComposer signs every message with APP_NAME.
func NewComposer(cfg config.Config) *notify.Composer {
	return notify.NewComposer(cfg.App.Name)
}
