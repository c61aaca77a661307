package notify

import (
	"fmt"
	"strings"

	"room-reservation/internal/domain/reservation"
)

// Recipient is the reservation holder a message is addressed to.
type Recipient struct {
	Username string
	Email    string
}

// Composer renders the booking emails. Signature is the system name used in the sign-off.
type Composer struct {
	signature string
}

func NewComposer(signature string) *Composer {
	return &Composer{signature: signature}
}

func (c *Composer) Confirmation(to Recipient, roomName string, slot reservation.TimeSlot) Message {
	return Message{
		To:      to.Email,
		Subject: "Room Reservation Confirmation - " + roomName,
		Body: c.body(to, false,
			"Your reservation has been confirmed:",
			details(roomName, slot)...),
	}
}

func (c *Composer) Updated(to Recipient, roomName string, slot reservation.TimeSlot) Message {
	return Message{
		To:      to.Email,
		Subject: "Room Reservation Updated - " + roomName,
		Body: c.body(to, false,
			fmt.Sprintf("Your reservation for %s has been updated.", roomName),
			details(roomName, slot)...),
	}
}

// Canceled uses the staff wording when byStaff is set.
func (c *Composer) Canceled(to Recipient, roomName string, slot reservation.TimeSlot, byStaff bool) Message {
	intro := fmt.Sprintf("Your reservation for room %s has been canceled.", roomName)
	if byStaff {
		intro = fmt.Sprintf("As per your request, our staff have canceled your reservation for %s:", roomName)
	}
	return Message{
		To:      to.Email,
		Subject: "Room Reservation Canceled - " + roomName,
		Body:    c.body(to, byStaff, intro, details(roomName, slot)...),
	}
}

func (c *Composer) OnBehalf(to Recipient, roomName string, slot reservation.TimeSlot) Message {
	return Message{
		To:      to.Email,
		Subject: "Room Reservation confirmation on behalf of our staff - " + roomName,
		Body: c.body(to, true,
			"Our staff have created a reservation for you on your behalf:",
			details(roomName, slot)...),
	}
}

func (c *Composer) RoomRenamed(to Recipient, oldName, newName string, slot reservation.TimeSlot) Message {
	return Message{
		To:      to.Email,
		Subject: "Room Name Changed - " + newName,
		Body: c.body(to, true,
			"Please note that the room you have a reservation for has been updated:",
			"Old Room Name: "+oldName,
			"New Room Name: "+newName,
			"Date: "+slot.Date().Display(),
			"Time: "+timeRange(slot),
		),
	}
}

func (c *Composer) Reminder(to Recipient, roomName string, slot reservation.TimeSlot) Message {
	return Message{
		To:      to.Email,
		Subject: "Upcoming Room Reservation for " + roomName,
		Body: c.body(to, false,
			"Reminder: your room reservation starts within the hour.",
			details(roomName, slot)...),
	}
}

func details(roomName string, slot reservation.TimeSlot) []string {
	return []string{
		"Room: " + roomName,
		"Date: " + slot.Date().Display(),
		"Time: " + timeRange(slot),
	}
}

func timeRange(slot reservation.TimeSlot) string {
	return slot.Start().Display() + " - " + slot.End().Display()
}

func (c *Composer) body(to Recipient, staff bool, intro string, lines ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n%s\n\n", to.Username, intro)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("\nThank you!\n")
	b.WriteString(c.signature)
	if staff {
		b.WriteString(" staff")
	}
	b.WriteByte('\n')
	return b.String()
}
