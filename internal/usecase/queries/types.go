package queries

import (
	"time"

	"github.com/google/uuid"
)

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotView is one booked interval on a room board.
type SlotView struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`
}

type DayAvailability struct {
	RoomID      uuid.UUID  `json:"room_id"`
	Date        string     `json:"date"`
	IsAvailable bool       `json:"is_available"`
	Slots       []SlotView `json:"slots"`
	// SlotFree answers a start/end pre-check; nil when none was asked.
	SlotFree *bool `json:"slot_free,omitempty"`
}

type RoomBoardEntry struct {
	Room        RoomView   `json:"room"`
	IsAvailable bool       `json:"is_available"`
	Bookings    []SlotView `json:"bookings"`
}

type RoomBoard struct {
	Date        string           `json:"date"`
	DateDisplay string           `json:"date_display"`
	Rooms       []RoomBoardEntry `json:"rooms"`
}

type BookingPrefill struct {
	Room *RoomView `json:"room,omitempty"`
	Date *string   `json:"date,omitempty"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomName     string    `json:"room_name"`
	RoomLocation string    `json:"room_location"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	UserEmail    string    `json:"user_email"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationPage struct {
	Items []ReservationView `json:"items"`
	Next  *Cursor           `json:"next,omitempty"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsStaff   bool       `json:"is_staff"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
