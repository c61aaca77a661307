// Command migrate applies migrations/ to the configured PostgreSQL database with Atlas.
//
//	migrate [-dir migrations] [-status]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	statusOnly := flag.Bool("status", false, "report pending migrations without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if cfg.DB.Driver == config.DriverSQLite {
		logger.Info("sqlite schema is created on startup; nothing to migrate")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := migrate(ctx, logger, cfg.DB.BuildDSN(), *dir, *atlasBin, *statusOnly); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func migrate(ctx context.Context, logger *slog.Logger, url, dir, atlasBin string, statusOnly bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("failed to load migrations from %s: %w", dir, err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("failed to start atlas: %w", err)
	}

	if statusOnly {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		logger.Info("migration status",
			slog.String("current", status.Current),
			slog.String("next", status.Next),
			slog.Int("pending", len(status.Pending)))
		return nil
	}

	result, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("migrations applied",
		slog.String("from", result.Current),
		slog.String("to", result.Target),
		slog.Int("applied", len(result.Applied)))
	return nil
}
