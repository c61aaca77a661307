package response

import (
	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type UpdateRoomResponse struct {
	Renamed       bool                   `json:"renamed"`
	RenameNotices commands.NoticeSummary `json:"rename_notices"`
}

type DeleteResponse struct {
	DeletedReservations int64 `json:"deleted_reservations"`
}
