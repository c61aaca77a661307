package room

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	id        uuid.UUID
	name      Name
	location  Location
	capacity  Capacity
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(name Name, location Location, capacity Capacity, now time.Time) *Room {
	return &Room{
		id:        uuid.New(),
		name:      name,
		location:  location,
		capacity:  capacity,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructRoom(id uuid.UUID, name Name, location Location, capacity Capacity, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		location:  location,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() Name           { return r.name }
func (r *Room) Location() Location   { return r.location }
func (r *Room) Capacity() Capacity   { return r.capacity }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// Change is the result of Update; holders of reservations are told when a room is renamed.
type Change struct {
	Renamed bool
	OldName string
}

func (r *Room) Update(name Name, location Location, capacity Capacity, now time.Time) Change {
	change := Change{
		Renamed: name.value != r.name.value,
		OldName: r.name.value,
	}
	r.name = name
	r.location = location
	r.capacity = capacity
	r.updatedAt = now
	return change
}
