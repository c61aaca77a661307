package gormstore

import (
	"database/sql/driver"
	"fmt"
	"time"

	"room-reservation/internal/domain/reservation"
)

// dayDate stores a calendar date as "YYYY-MM-DD", which sorts correctly in SQLite TEXT columns
// and is accepted by a PostgreSQL DATE column.
type dayDate struct {
	reservation.Date
}

func (d dayDate) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *dayDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = reservation.DateOf(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("dayDate: unsupported source %T", src)
	}
}

func (d *dayDate) parse(s string) error {
	if len(s) > len(reservation.DateLayout) {
		s = s[:len(reservation.DateLayout)]
	}
	parsed, err := reservation.ParseDate(s)
	if err != nil {
		return err
	}
	d.Date = parsed
	return nil
}

// clockTime stores a time of day as "HH:MM:SS".
type clockTime struct {
	reservation.TimeOfDay
}

func (c clockTime) Value() (driver.Value, error) {
	h := c.Seconds() / 3600
	m := c.Seconds() % 3600 / 60
	s := c.Seconds() % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s), nil
}

func (c *clockTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.TimeOfDay = reservation.TimeOfDayOf(v)
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	default:
		return fmt.Errorf("clockTime: unsupported source %T", src)
	}
}

// parse drops fractional seconds, which PostgreSQL TIME values carry.
func (c *clockTime) parse(s string) error {
	const width = len("15:04:05")
	if len(s) > width {
		s = s[:width]
	}
	tod, err := reservation.ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	c.TimeOfDay = tod
	return nil
}
