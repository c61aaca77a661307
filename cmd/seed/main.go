// Command seed loads users, rooms and reservations from a YAML file through the normal
// command paths, so the same validation and overlap rules apply. Existing rows are kept.
//
//	seed [-file cmd/seed/seed.yaml]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"room-reservation/cmd/bootstrap"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

func main() {
	file := flag.String("file", "cmd/seed/seed.yaml", "seed file")
	flag.Parse()
	os.Exit(run(*file))
}

func run(path string) int {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open seed file", "path", path, "error", err)
		return 1
	}
	defer f.Close()

	data, err := parseSeed(f)
	if err != nil {
		slog.Error("invalid seed file", "path", path, "error", err)
		return 1
	}

	var s seeder
	app := fx.New(
		bootstrap.CoreModule,
		fx.Invoke(func(
			users commands.UserCommands,
			rooms commands.RoomCommands,
			reservations commands.ReservationCommands,
			userQueries queries.UserQueries,
			roomQueries queries.RoomQueries,
			logger *slog.Logger,
		) {
			s = seeder{
				users:        users,
				rooms:        rooms,
				reservations: reservations,
				userQueries:  userQueries,
				roomQueries:  roomQueries,
				logger:       logger,
			}
		}),
		fx.NopLogger,
	)

	ctx := context.Background()
	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start seed", "error", err)
		return 1
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(ctx, app.StopTimeout())
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	summary, err := s.Seed(ctx, data)
	if err != nil {
		s.logger.Error("seed failed", slog.String("error", err.Error()))
		return 1
	}
	s.logger.Info("seed finished",
		slog.Int("users", summary.Users),
		slog.Int("rooms", summary.Rooms),
		slog.Int("reservations", summary.Reservations),
		slog.Int("skipped", summary.Skipped))
	return 0
}
