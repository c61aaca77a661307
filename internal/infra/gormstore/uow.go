package gormstore

import (
	"context"
	"log/slog"

	"room-reservation/internal/usecase/shared"

	"gorm.io/gorm"
)

type GormUoW struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormUoW(db *gorm.DB, logger *slog.Logger) shared.UnitOfWork {
	return &GormUoW{db: db, logger: logger}
}

// Within commits when fn returns nil and rolls back otherwise.
func (u *GormUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(ctx, &gormTx{db: db, logger: u.logger})
	})
}

type gormTx struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (t *gormTx) Rooms() shared.RoomRepository {
	return &RoomRepository{db: t.db, logger: t.logger}
}

func (t *gormTx) Reservations() shared.ReservationRepository {
	return &ReservationRepository{db: t.db, logger: t.logger}
}

func (t *gormTx) Users() shared.UserRepository {
	return &UserRepository{db: t.db, logger: t.logger}
}
