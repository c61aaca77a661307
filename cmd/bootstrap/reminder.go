package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/notify"
	"room-reservation/internal/usecase/reminder"
	"room-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var ReminderModule = fx.Module("reminder",
	fx.Provide(
		NewSweeper,
		NewScheduler,
	),
	fx.Invoke(func(*reminder.Scheduler) {}),
)

func NewSweeper(
	uow shared.UnitOfWork,
	dispatcher *notify.Dispatcher,
	composer *notify.Composer,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *reminder.Sweeper {
	return reminder.NewSweeper(uow, dispatcher, composer, clk, cfg.Reminder.Lookahead, logger)
}

// NewScheduler ticks only when REMINDER_INTERVAL is set.
func NewScheduler(lc fx.Lifecycle, sweeper *reminder.Sweeper, cfg config.Config, logger *slog.Logger) *reminder.Scheduler {
	scheduler := reminder.NewScheduler(sweeper, cfg.Reminder.Interval, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start(context.Background())
			return nil
		},
		OnStop: scheduler.Stop,
	})
	return scheduler
}
