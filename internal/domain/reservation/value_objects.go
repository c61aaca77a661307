package reservation

import (
	"fmt"
	"strings"
	"time"

	"room-reservation/internal/pkg/errs"
)

var (
	ErrInvalidDate      = errs.New("invalid date")
	ErrInvalidTimeOfDay = errs.New("invalid time of day")
	ErrInvalidTimeSlot  = errs.New("end time must be after start time")
)

const (
	DateLayout     = "2006-01-02"
	secondsPerDay  = 24 * 60 * 60
	hourInSeconds  = 60 * 60
	minuteSeconds  = 60
	displayDateFmt = "02-01-2006"
)

// Date is a calendar date without a time zone. The zero value is not a valid date.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as observed in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), ErrInvalidDate)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Time() time.Time        { return d.t }
func (d Date) String() string         { return d.t.Format(DateLayout) }
func (d Date) Display() string        { return d.t.Format(displayDateFmt) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) AddDays(n int) Date     { return Date{t: d.t.AddDate(0, 0, n)} }

// At combines the date with a time of day in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	h, mi, s := tod.parts()
	return time.Date(y, m, day, h, mi, s, 0, loc)
}

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	sec int
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, errs.Mark(errs.Newf("time %02d:%02d:%02d out of range", hour, minute, second), ErrInvalidTimeOfDay)
	}
	return TimeOfDay{sec: hour*hourInSeconds + minute*minuteSeconds + second}, nil
}

func TimeOfDayFromSeconds(sec int) (TimeOfDay, error) {
	if sec < 0 || sec >= secondsPerDay {
		return TimeOfDay{}, errs.Mark(errs.Newf("seconds %d out of range", sec), ErrInvalidTimeOfDay)
	}
	return TimeOfDay{sec: sec}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, errs.Mark(errs.Newf("parse time %q", s), ErrInvalidTimeOfDay)
}

// TimeOfDayOf returns the wall-clock part of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{sec: t.Hour()*hourInSeconds + t.Minute()*minuteSeconds + t.Second()}
}

func MustTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

func (t TimeOfDay) Seconds() int                { return t.sec }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.sec < other.sec }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.sec > other.sec }

func (t TimeOfDay) parts() (int, int, int) {
	return t.sec / hourInSeconds, (t.sec % hourInSeconds) / minuteSeconds, t.sec % minuteSeconds
}

// String renders "15:04", or "15:04:05" when seconds are set.
func (t TimeOfDay) String() string {
	h, m, s := t.parts()
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Display renders the 12-hour form used in emails, e.g. "9:00 AM".
func (t TimeOfDay) Display() string {
	h, m, _ := t.parts()
	return time.Date(2000, 1, 1, h, m, 0, 0, time.UTC).Format("3:04 PM")
}

// TimeSlot is the half-open interval [start, end) on one date.
type TimeSlot struct {
	date  Date
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(date Date, start, end TimeOfDay) (TimeSlot, error) {
	if date.IsZero() {
		return TimeSlot{}, errs.Mark(errs.New("date is required"), ErrInvalidDate)
	}
	if !start.Before(end) {
		return TimeSlot{}, errs.Mark(errs.Newf("slot %s-%s", start, end), ErrInvalidTimeSlot)
	}
	return TimeSlot{date: date, start: start, end: end}, nil
}

func (ts TimeSlot) Date() Date       { return ts.date }
func (ts TimeSlot) Start() TimeOfDay { return ts.start }
func (ts TimeSlot) End() TimeOfDay   { return ts.end }

// Overlaps reports whether both slots share a date and start < other.end && end > other.start.
// Slots that only touch at an endpoint do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.date.Equal(other.date) &&
		ts.start.Before(other.end) &&
		ts.end.After(other.start)
}

func (ts TimeSlot) StartsAt(loc *time.Location) time.Time {
	return ts.date.At(ts.start, loc)
}

func (ts TimeSlot) EndsAt(loc *time.Location) time.Time {
	return ts.date.At(ts.end, loc)
}

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end.sec-ts.start.sec) * time.Second
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", ts.date, ts.start, ts.end)
}
