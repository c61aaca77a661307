package request

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	Date      string    `json:"date" binding:"required,isodate"`
	StartTime string    `json:"start_time" binding:"required,hhmm"`
	EndTime   string    `json:"end_time" binding:"required,hhmm"`
}

// ToInput assumes the binding tags already accepted the date and times.
func (r ReservationRequest) ToInput() (commands.ReservationInput, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	start, err := reservation.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	end, err := reservation.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	return commands.ReservationInput{RoomID: r.RoomID, Date: date, Start: start, End: end}, nil
}

// AdminReservationRequest books on behalf of UserID.
type AdminReservationRequest struct {
	ReservationRequest
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
