package converter

import (
	"room-reservation/internal/domain/room"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:        r.ID(),
		Name:      r.Name().Value(),
		Location:  r.Location().Value(),
		Capacity:  int32(r.Capacity().Value()), // #nosec G115 -- capacity is validated positive and small
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:        r.ID(),
		Name:      r.Name().Value(),
		Location:  r.Location().Value(),
		Capacity:  int32(r.Capacity().Value()), // #nosec G115 -- capacity is validated positive and small
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomFromRow(row sqlc.Rooms) (*room.Room, error) {
	name, err := room.NewName(row.Name)
	if err != nil {
		return nil, errs.Wrap(err, "stored room name")
	}
	location, err := room.NewLocation(row.Location)
	if err != nil {
		return nil, errs.Wrap(err, "stored room location")
	}
	capacity, err := room.NewCapacity(int(row.Capacity))
	if err != nil {
		return nil, errs.Wrap(err, "stored room capacity")
	}
	return room.ReconstructRoom(
		row.ID,
		name,
		location,
		capacity,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomViewFromRow(row sqlc.Rooms) queries.RoomView {
	return queries.RoomView{
		ID:        row.ID,
		Name:      row.Name,
		Location:  row.Location,
		Capacity:  int(row.Capacity),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
