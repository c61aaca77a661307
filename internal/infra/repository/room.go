package repository

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
}

type RoomRepository struct {
	queries RoomQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewRoomRepository(queries *sqlc.Queries, db sqlc.DBTX, logger *slog.Logger) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		return wrapQueryErr(r.logger, "failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, r.db, converter.RoomToUpdateParams(rm))
	if err != nil {
		return wrapQueryErr(r.logger, "failed to update room", err)
	}
	if n == 0 {
		return notFound(r.logger, "room not found")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, r.db, id)
	if err != nil {
		return wrapQueryErr(r.logger, "failed to delete room", err)
	}
	if n == 0 {
		return notFound(r.logger, "room not found")
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find room", err)
	}
	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load room", err)
	}
	return rm, nil
}
