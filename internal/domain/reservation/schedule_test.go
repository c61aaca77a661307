//go:build unit

package reservation_test

import (
	"testing"

	"room-reservation/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConflicts(t *testing.T) {
	roomA, roomB := uuid.New(), uuid.New()
	existingID := uuid.New()
	existing := []reservation.Booking{
		{ID: existingID, RoomID: roomA, Slot: slot(t, "2025-05-01", "09:00", "10:00")},
		{ID: uuid.New(), RoomID: roomB, Slot: slot(t, "2025-05-01", "10:00", "12:00")},
	}

	tests := []struct {
		name      string
		roomID    uuid.UUID
		candidate reservation.TimeSlot
		exclude   *uuid.UUID
		want      bool
	}{
		{name: "back to back is accepted", roomID: roomA, candidate: slot(t, "2025-05-01", "10:00", "11:00")},
		{name: "overlap is rejected", roomID: roomA, candidate: slot(t, "2025-05-01", "09:30", "10:30"), want: true},
		{name: "other room is ignored", roomID: roomB, candidate: slot(t, "2025-05-01", "09:00", "10:00")},
		{name: "editing does not conflict with itself", roomID: roomA, candidate: slot(t, "2025-05-01", "09:15", "10:15"), exclude: &existingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.Conflicts(existing, tt.roomID, tt.candidate, tt.exclude))
		})
	}
}

func TestDaySchedule(t *testing.T) {
	roomID := uuid.New()
	date := reservation.NewDate(2025, 5, 1)

	empty := reservation.NewDaySchedule(roomID, date, nil)
	assert.True(t, empty.IsAvailable())
	assert.Empty(t, empty.Slots())

	bookings := []reservation.Booking{
		{RoomID: roomID, Slot: slot(t, "2025-05-01", "14:00", "15:00")},
		{RoomID: roomID, Slot: slot(t, "2025-05-01", "09:00", "09:30")},
		{RoomID: roomID, Slot: slot(t, "2025-05-02", "08:00", "09:00")},
		{RoomID: uuid.New(), Slot: slot(t, "2025-05-01", "07:00", "08:00")},
	}
	sched := reservation.NewDaySchedule(roomID, date, bookings)

	assert.False(t, sched.IsAvailable(), "a single booking marks the whole day unavailable")
	got := make([]string, 0)
	for _, s := range sched.Slots() {
		got = append(got, s.String())
	}
	want := []string{"2025-05-01 09:00-09:30", "2025-05-01 14:00-15:00"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}
}
