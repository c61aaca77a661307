package reservation

import (
	"sort"

	"github.com/google/uuid"
)

// Booking is the part of a reservation the overlap rule looks at.
type Booking struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	Slot   TimeSlot
}

// Conflicts reports whether candidate overlaps any booking of roomID, ignoring exclude.
func Conflicts(existing []Booking, roomID uuid.UUID, candidate TimeSlot, exclude *uuid.UUID) bool {
	for _, b := range existing {
		if b.RoomID != roomID {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		if b.Slot.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// DaySchedule holds the booked slots of one room on one date, ordered by start.
type DaySchedule struct {
	roomID uuid.UUID
	date   Date
	slots  []TimeSlot
}

func NewDaySchedule(roomID uuid.UUID, date Date, bookings []Booking) DaySchedule {
	slots := make([]TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		if b.RoomID == roomID && b.Slot.Date().Equal(date) {
			slots = append(slots, b.Slot)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start().Before(slots[j].Start())
	})
	return DaySchedule{roomID: roomID, date: date, slots: slots}
}

func (s DaySchedule) RoomID() uuid.UUID { return s.roomID }
func (s DaySchedule) Date() Date        { return s.date }

func (s DaySchedule) Slots() []TimeSlot {
	out := make([]TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// IsAvailable is true only when nothing is booked that day; one booking of any
// length marks the whole day unavailable.
func (s DaySchedule) IsAvailable() bool {
	return len(s.slots) == 0
}
