package queries

import (
	"context"

	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	// List orders rooms by name.
	List(ctx context.Context) ([]RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock
type RoomQueries interface {
	List(ctx context.Context) ([]RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]RoomView, error) {
	rooms, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	rm, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrRoomNotFound)
	}
	return rm, nil
}
