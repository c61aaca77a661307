package shared

import (
	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID  uuid.UUID
	IsStaff bool
}

func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsStaff || a.UserID == ownerID
}

// ReservationDetail is a reservation joined with the room and owner fields the notifications need.
type ReservationDetail struct {
	Reservation   *reservation.Reservation
	RoomName      string
	RoomLocation  string
	OwnerUsername string
	OwnerEmail    string
}
