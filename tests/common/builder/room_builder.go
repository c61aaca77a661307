//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/room"
	reqdto "room-reservation/internal/handler/dto/request"
)

type RoomBuilder struct {
	Name     string
	Location string
	Capacity int
	Now      time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Name:     "Kauri Room",
		Location: "Level 2, East Wing",
		Capacity: 12,
		Now:      time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	name, err := room.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	location, err := room.NewLocation(r.Location)
	if err != nil {
		return nil, err
	}
	capacity, err := room.NewCapacity(r.Capacity)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(name, location, capacity, r.Now), nil
}

func (r *RoomBuilder) BuildDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:     r.Name,
		Location: r.Location,
		Capacity: r.Capacity,
	}
}

func (r *RoomBuilder) MustBuildDomain() *room.Room {
	rm, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rm
}

// Fluent builder methods
func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithLocation(location string) *RoomBuilder {
	r.Location = location
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}
