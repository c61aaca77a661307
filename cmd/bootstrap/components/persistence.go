package components

import (
	"log/slog"

	"room-reservation/internal/infra/gormstore"
	"room-reservation/internal/infra/readstore"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/infra/uow"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Stores is what the use cases need from persistence, whichever driver backs it.
type Stores struct {
	fx.Out

	UoW          shared.UnitOfWork
	Rooms        queries.RoomReadStore
	Users        queries.UserReadStore
	Reservations queries.ReservationReadStore
}

// PgxStores backs everything with sqlc queries over a pgx pool.
func PgxStores(pool *pgxpool.Pool, logger *slog.Logger) Stores {
	q := sqlc.New()
	return Stores{
		UoW:          uow.NewPostgresUoW(pool, q, logger),
		Rooms:        readstore.NewRoomReadStore(q, pool, logger),
		Users:        readstore.NewUserReadStore(q, pool, logger),
		Reservations: readstore.NewReservationReadStore(q, pool, logger),
	}
}

func GormStores(db *gorm.DB, logger *slog.Logger) Stores {
	return Stores{
		UoW:          gormstore.NewGormUoW(db, logger),
		Rooms:        gormstore.NewRoomReadStore(db, logger),
		Users:        gormstore.NewUserReadStore(db, logger),
		Reservations: gormstore.NewReservationReadStore(db, logger),
	}
}
