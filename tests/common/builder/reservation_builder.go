//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	UserID       uuid.UUID
	RoomID       uuid.UUID
	Date         string
	Start        string
	End          string
	ReminderSent bool
	Now          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID: uuid.New(),
		RoomID: uuid.New(),
		Date:   "2025-05-01",
		Start:  "09:00",
		End:    "10:00",
		Now:    time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildSlot() (reservation.TimeSlot, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	start, err := reservation.ParseTimeOfDay(r.Start)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	end, err := reservation.ParseTimeOfDay(r.End)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlot(date, start, end)
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := r.BuildSlot()
	if err != nil {
		return nil, err
	}
	if r.ReminderSent {
		return reservation.ReconstructReservation(uuid.New(), r.UserID, r.RoomID, slot, true, r.Now, r.Now), nil
	}
	return reservation.NewReservation(r.UserID, r.RoomID, slot, r.Now)
}

func (r *ReservationBuilder) BuildDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		RoomID:    r.RoomID,
		Date:      r.Date,
		StartTime: r.Start,
		EndTime:   r.End,
	}
}

func (r *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

// Fluent builder methods
func (r *ReservationBuilder) WithOwner(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithRoom(roomID uuid.UUID) *ReservationBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) On(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) Between(start, end string) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *ReservationBuilder) WithReminderSent() *ReservationBuilder {
	r.ReminderSent = true
	return r
}
