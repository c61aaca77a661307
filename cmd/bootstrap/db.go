package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/cmd/bootstrap/components"
	"room-reservation/internal/infra/db"
	"room-reservation/internal/infra/gormstore"
	"room-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStores,
	),
)

// NewStores opens the store selected by DB_DRIVER and closes it on stop.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (components.Stores, error) {
	var (
		stores  components.Stores
		cleanup func()
	)
	switch cfg.DB.Driver {
	case config.DriverSQLite, config.DriverGormPostgres:
		gdb, closeFn, err := gormstore.Open(cfg.DB, logger)
		if err != nil {
			return components.Stores{}, err
		}
		stores, cleanup = components.GormStores(gdb, logger), closeFn
	default:
		pool, closeFn, err := db.Connect(cfg.DB)
		if err != nil {
			return components.Stores{}, err
		}
		stores, cleanup = components.PgxStores(pool, logger), closeFn
	}
	logger.Info("database connected", slog.String("driver", cfg.DB.Driver))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return stores, nil
}
