package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 50
	CursorVersionV1  = "v1"
)

// ReservationCursor is the keyset position in the (date desc, start asc, id asc) ordering.
type ReservationCursor struct {
	Date  reservation.Date
	Start reservation.TimeOfDay
	ID    uuid.UUID
}

func EncodeReservationCursor(c ReservationCursor) string {
	data := fmt.Sprintf("%s:%s|%d|%s", CursorVersionV1, c.Date.String(), c.Start.Seconds(), c.ID.String())
	return base64.URLEncoding.EncodeToString([]byte(data))
}

func DecodeReservationCursor(cursor string) (ReservationCursor, error) {
	if cursor == "" {
		return ReservationCursor{}, fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return ReservationCursor{}, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return ReservationCursor{}, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return ReservationCursor{}, fmt.Errorf("invalid cursor format: expected '<date>|<seconds>|<uuid>'")
	}
	date, err := reservation.ParseDate(parts[0])
	if err != nil {
		return ReservationCursor{}, fmt.Errorf("invalid date: %w", err)
	}
	sec, err := strconv.Atoi(parts[1])
	if err != nil {
		return ReservationCursor{}, fmt.Errorf("invalid start: %w", err)
	}
	start, err := reservation.TimeOfDayFromSeconds(sec)
	if err != nil {
		return ReservationCursor{}, fmt.Errorf("invalid start: %w", err)
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return ReservationCursor{}, fmt.Errorf("invalid UUID: %w", err)
	}
	return ReservationCursor{Date: date, Start: start, ID: id}, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
