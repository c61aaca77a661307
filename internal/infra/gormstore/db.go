package gormstore

import (
	"fmt"
	"log/slog"
	"time"

	"room-reservation/internal/pkg/config"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const dialectPostgres = "postgres"

// Open connects gorm to SQLite (via modernc.org/sqlite) or PostgreSQL. SQLite gets its schema
// from AutoMigrate and a single connection; PostgreSQL is expected to be migrated already.
func Open(cfg config.DBConfig, slogger *slog.Logger) (*gorm.DB, func(), error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        cfg.SQLitePath,
		})
	case config.DriverGormPostgres:
		dialector = postgres.Open(cfg.BuildDSN())
	default:
		return nil, nil, fmt.Errorf("gormstore: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		if err := AutoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
	} else if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(int(cfg.MaxConns))
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	cleanup := func() {
		slogger.Info("closing gorm database", "driver", cfg.Driver)
		if err := sqlDB.Close(); err != nil {
			slogger.Warn("failed to close gorm database", "error", err.Error())
		}
	}

	return db, cleanup, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &roomModel{}, &reservationModel{}); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == dialectPostgres
}
