package reservation

import (
	"time"

	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnerRequired = errs.New("reservation owner is required")
	ErrRoomRequired  = errs.New("reservation room is required")
)

type Reservation struct {
	id           uuid.UUID
	userID       uuid.UUID
	roomID       uuid.UUID
	slot         TimeSlot
	reminderSent bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReservation(userID, roomID uuid.UUID, slot TimeSlot, now time.Time) (*Reservation, error) {
	if userID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if roomID == uuid.Nil {
		return nil, ErrRoomRequired
	}
	if _, err := NewTimeSlot(slot.date, slot.start, slot.end); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		roomID:    roomID,
		slot:      slot,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(id, userID, roomID uuid.UUID, slot TimeSlot, reminderSent bool, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:           id,
		userID:       userID,
		roomID:       roomID,
		slot:         slot,
		reminderSent: reminderSent,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) ReminderSent() bool   { return r.reminderSent }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Reschedule moves the reservation. A pending reminder is re-armed when the start moves.
func (r *Reservation) Reschedule(roomID uuid.UUID, slot TimeSlot, now time.Time) error {
	if roomID == uuid.Nil {
		return ErrRoomRequired
	}
	if _, err := NewTimeSlot(slot.date, slot.start, slot.end); err != nil {
		return err
	}

	if !slot.date.Equal(r.slot.date) || slot.start != r.slot.start {
		r.reminderSent = false
	}
	r.roomID = roomID
	r.slot = slot
	r.updatedAt = now
	return nil
}

func (r *Reservation) MarkReminderSent(now time.Time) {
	r.reminderSent = true
	r.updatedAt = now
}

// ReminderDue reports whether the start falls within [now, now+lookahead] and no reminder went out yet.
func (r *Reservation) ReminderDue(now time.Time, loc *time.Location, lookahead time.Duration) bool {
	if r.reminderSent {
		return false
	}
	start := r.slot.StartsAt(loc)
	return !start.Before(now) && !start.After(now.Add(lookahead))
}

func (r *Reservation) Booking() Booking {
	return Booking{ID: r.id, RoomID: r.roomID, Slot: r.slot}
}
