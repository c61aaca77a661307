// Command reminder runs one reminder sweep and exits; schedule it from cron.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"room-reservation/cmd/bootstrap"
	"room-reservation/internal/usecase/reminder"

	"go.uber.org/fx"
)

const sweepTimeout = 5 * time.Minute

func main() {
	os.Exit(run())
}

func run() int {
	var sweeper *reminder.Sweeper
	app := fx.New(
		bootstrap.CoreModule,
		fx.Provide(bootstrap.NewSweeper),
		fx.Populate(&sweeper),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start reminder", "error", err)
		return 1
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("failed to stop reminder cleanly", "error", err)
		}
	}()

	ctx, sweepCancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer sweepCancel()

	result, err := sweeper.Run(ctx)
	if err != nil {
		slog.Error("reminder sweep failed", "error", err)
		return 1
	}
	if result.Failed > 0 {
		return 2
	}
	return 0
}
