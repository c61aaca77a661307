package request

import "room-reservation/internal/usecase/commands"

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required,max=100,printable"`
	Location string `json:"location" binding:"max=100,printable"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{Name: r.Name, Location: r.Location, Capacity: r.Capacity}
}

type UpdateRoomRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100,printable"`
	Location *string `json:"location" binding:"omitempty,max=100,printable"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{Name: r.Name, Location: r.Location, Capacity: r.Capacity}
}
