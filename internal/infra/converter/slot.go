package converter

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPg(d reservation.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPg(pd pgtype.Date) reservation.Date {
	return reservation.DateOf(pgconv.DateFromPgtype(pd))
}

func TimeOfDayToPg(t reservation.TimeOfDay) pgtype.Time {
	return pgconv.ClockToPgtype(t.Seconds())
}

func TimeOfDayFromPg(pt pgtype.Time) (reservation.TimeOfDay, error) {
	return reservation.TimeOfDayFromSeconds(pgconv.ClockFromPgtype(pt))
}

// SlotFromPg rebuilds a stored slot. Rows violating start < end are reported, not repaired.
func SlotFromPg(date pgtype.Date, start, end pgtype.Time) (reservation.TimeSlot, error) {
	from, err := TimeOfDayFromPg(start)
	if err != nil {
		return reservation.TimeSlot{}, errs.Wrap(err, "stored start_time")
	}
	to, err := TimeOfDayFromPg(end)
	if err != nil {
		return reservation.TimeSlot{}, errs.Wrap(err, "stored end_time")
	}
	return reservation.NewTimeSlot(DateFromPg(date), from, to)
}
