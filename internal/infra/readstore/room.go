package readstore

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/readstore/room.go -package=readstoremock
type RoomReadQueries interface {
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX, logger *slog.Logger) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RoomReadStore) List(ctx context.Context) ([]queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list rooms", err)
	}

	views := make([]queries.RoomView, 0, len(rows))
	for _, row := range rows {
		views = append(views, converter.RoomViewFromRow(row))
	}
	return views, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find room", err)
	}

	view := converter.RoomViewFromRow(row)
	return &view, nil
}
