package response

import (
	"time"

	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/notify"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomName     string    `json:"room_name"`
	RoomLocation string    `json:"room_location"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationViews(vs []queries.ReservationView) ([]ReservationResponse, error) {
	resp := make([]ReservationResponse, 0, len(vs))
	if len(vs) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp, &vs); err != nil {
		return nil, err
	}
	return resp, nil
}

type ReservationPageResponse struct {
	Items []ReservationResponse `json:"items"`
	Next  string                `json:"next,omitempty"`
}

func FromReservationPage(p *queries.ReservationPage) (*ReservationPageResponse, error) {
	items, err := FromReservationViews(p.Items)
	if err != nil {
		return nil, err
	}
	resp := &ReservationPageResponse{Items: items}
	if p.Next != nil {
		resp.Next = p.Next.After
	}
	return resp, nil
}

// MutationResponse reports the reservation touched and what happened to its email.
type MutationResponse struct {
	ReservationID uuid.UUID      `json:"reservation_id"`
	Notification  notify.Outcome `json:"notification"`
	Message       string         `json:"message,omitempty"`
}

func FromReservationResult(r *commands.ReservationResult) MutationResponse {
	resp := MutationResponse{ReservationID: r.ReservationID, Notification: r.Notification}
	if r.Notification.IsFailed() {
		resp.Message = "email failed to send"
	}
	return resp
}
