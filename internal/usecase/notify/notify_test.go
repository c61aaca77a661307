//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/usecase/notify"
	notifymock "room-reservation/tests/mock/notify"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_Deliver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	msg := notify.Message{To: "aroha@example.com", Subject: "s", Body: "b"}

	tests := []struct {
		name    string
		msg     notify.Message
		sendErr error
		calls   int
		want    notify.Outcome
	}{
		{name: "sent", msg: msg, calls: 1, want: notify.Sent()},
		{name: "transport failure", msg: msg, sendErr: errors.New("dial tcp: timeout"), calls: 1, want: notify.Failed("dial tcp: timeout")},
		{name: "blank recipient", msg: notify.Message{To: "  "}, calls: 0, want: notify.Skipped("recipient has no email address")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := notifymock.NewMockSender(ctrl)
			sender.EXPECT().Send(gomock.Any(), tt.msg).Return(tt.sendErr).Times(tt.calls)

			got := notify.NewDispatcher(sender, logger).Deliver(context.Background(), tt.msg)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposer(t *testing.T) {
	date := reservation.NewDate(2025, 5, 1)
	slot, err := reservation.NewTimeSlot(date, reservation.MustTimeOfDay("09:00"), reservation.MustTimeOfDay("13:30"))
	require.NoError(t, err)

	c := notify.NewComposer("Te Whare Runaga Conference Room Booking System")
	to := notify.Recipient{Username: "aroha", Email: "aroha@example.com"}

	t.Run("confirmation body", func(t *testing.T) {
		got := c.Confirmation(to, "Kauri Room", slot)

		want := notify.Message{
			To:      "aroha@example.com",
			Subject: "Room Reservation Confirmation - Kauri Room",
			Body: "Hello aroha,\n\n" +
				"Your reservation has been confirmed:\n\n" +
				"Room: Kauri Room\n" +
				"Date: 01-05-2025\n" +
				"Time: 9:00 AM - 1:30 PM\n" +
				"\nThank you!\n" +
				"Te Whare Runaga Conference Room Booking System\n",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Confirmation() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("staff signed messages", func(t *testing.T) {
		for name, msg := range map[string]notify.Message{
			"on behalf":    c.OnBehalf(to, "Kauri Room", slot),
			"staff cancel": c.Canceled(to, "Kauri Room", slot, true),
			"room renamed": c.RoomRenamed(to, "Kauri Room", "Totara Room", slot),
		} {
			assert.Contains(t, msg.Body, "Te Whare Runaga Conference Room Booking System staff\n", name)
		}
	})

	t.Run("owner signed messages", func(t *testing.T) {
		for name, msg := range map[string]notify.Message{
			"updated":  c.Updated(to, "Kauri Room", slot),
			"canceled": c.Canceled(to, "Kauri Room", slot, false),
			"reminder": c.Reminder(to, "Kauri Room", slot),
		} {
			assert.NotContains(t, msg.Body, "System staff", name)
			assert.Equal(t, "aroha@example.com", msg.To, name)
		}
	})

	t.Run("subjects", func(t *testing.T) {
		assert.Equal(t, "Room Reservation Updated - Kauri Room", c.Updated(to, "Kauri Room", slot).Subject)
		assert.Equal(t, "Room Reservation Canceled - Kauri Room", c.Canceled(to, "Kauri Room", slot, true).Subject)
		assert.Equal(t, "Room Name Changed - Totara Room", c.RoomRenamed(to, "Kauri Room", "Totara Room", slot).Subject)
		assert.Equal(t, "Upcoming Room Reservation for Kauri Room", c.Reminder(to, "Kauri Room", slot).Subject)
	})
}
