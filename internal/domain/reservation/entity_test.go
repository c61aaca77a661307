//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	s := slot(t, "2025-05-01", "09:00", "10:00")

	t.Run("success", func(t *testing.T) {
		r, err := reservation.NewReservation(uuid.New(), uuid.New(), s, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.False(t, r.ReminderSent())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, s, r.Slot())
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.Nil, uuid.New(), s, now)
		assert.ErrorIs(t, err, reservation.ErrOwnerRequired)
	})

	t.Run("missing room", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), uuid.Nil, s, now)
		assert.ErrorIs(t, err, reservation.ErrRoomRequired)
	})

	t.Run("zero slot", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), uuid.New(), reservation.TimeSlot{}, now)
		assert.Error(t, err)
	})
}

func TestReservation_Reschedule(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	roomID := uuid.New()

	newSent := func(t *testing.T) *reservation.Reservation {
		r := reservation.ReconstructReservation(uuid.New(), uuid.New(), roomID, slot(t, "2025-05-01", "09:00", "10:00"), true, now, now)
		return r
	}

	t.Run("moving the start re-arms the reminder", func(t *testing.T) {
		r := newSent(t)
		require.NoError(t, r.Reschedule(roomID, slot(t, "2025-05-01", "09:15", "10:15"), now.Add(time.Minute)))
		assert.False(t, r.ReminderSent())
		assert.Equal(t, now.Add(time.Minute), r.UpdatedAt())
		assert.Equal(t, now, r.CreatedAt(), "created_at is immutable")
	})

	t.Run("extending the end keeps the reminder state", func(t *testing.T) {
		r := newSent(t)
		require.NoError(t, r.Reschedule(roomID, slot(t, "2025-05-01", "09:00", "11:00"), now))
		assert.True(t, r.ReminderSent())
	})

	t.Run("invalid slot leaves reservation untouched", func(t *testing.T) {
		r := newSent(t)
		before := r.Slot()
		err := r.Reschedule(uuid.Nil, slot(t, "2025-05-02", "09:00", "10:00"), now)
		assert.ErrorIs(t, err, reservation.ErrRoomRequired)
		assert.Equal(t, before, r.Slot())
	})
}

func TestReservation_ReminderDue(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, loc)
	build := func(start, end string, sent bool) *reservation.Reservation {
		return reservation.ReconstructReservation(uuid.New(), uuid.New(), uuid.New(), slot(t, "2025-05-01", start, end), sent, now, now)
	}

	tests := []struct {
		name string
		r    *reservation.Reservation
		want bool
	}{
		{name: "starts in 45 minutes", r: build("09:45", "10:30", false), want: true},
		{name: "starts now", r: build("09:00", "10:00", false), want: true},
		{name: "starts exactly at lookahead", r: build("10:00", "11:00", false), want: true},
		{name: "starts after lookahead", r: build("10:01", "11:00", false), want: false},
		{name: "already started", r: build("08:59", "10:00", false), want: false},
		{name: "already sent", r: build("09:30", "10:00", true), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.ReminderDue(now, loc, time.Hour))
		})
	}
}
