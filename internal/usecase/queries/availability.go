package queries

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock
type AvailabilityQueries interface {
	// Conflicts reports whether [start, end) overlaps a booking of the room on date, ignoring exclude.
	Conflicts(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, exclude *uuid.UUID) (bool, error)
	Availability(ctx context.Context, roomID uuid.UUID, date reservation.Date) (*DayAvailability, error)
	// Board lists every room for rawDate, falling back to today when rawDate is missing or invalid.
	Board(ctx context.Context, rawDate string) (*RoomBoard, error)
	// Prefill resolves the booking form defaults, ignoring values that do not resolve.
	Prefill(ctx context.Context, rawRoomID, rawDate string) (*BookingPrefill, error)
}

type availabilityQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewAvailabilityQueries(rooms RoomReadStore, reservations ReservationReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, reservations: reservations, clock: clk}
}

func (q *availabilityQueriesImpl) Conflicts(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, exclude *uuid.UUID) (bool, error) {
	bookings, err := q.reservations.BookingsForRoom(ctx, roomID, slot.Date())
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservation.Conflicts(bookings, roomID, slot, exclude), nil
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, roomID uuid.UUID, date reservation.Date) (*DayAvailability, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, mapNotFound(err, errs.ErrRoomNotFound)
	}
	bookings, err := q.reservations.BookingsForRoom(ctx, roomID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	sched := reservation.NewDaySchedule(roomID, date, bookings)
	return &DayAvailability{
		RoomID:      roomID,
		Date:        date.String(),
		IsAvailable: sched.IsAvailable(),
		Slots:       slotViews(sched.Slots()),
	}, nil
}

func (q *availabilityQueriesImpl) Board(ctx context.Context, rawDate string) (*RoomBoard, error) {
	date := q.resolveDate(rawDate)

	rooms, err := q.rooms.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	bookings, err := q.reservations.BookingsOn(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	board := &RoomBoard{
		Date:        date.String(),
		DateDisplay: date.Display(),
		Rooms:       make([]RoomBoardEntry, 0, len(rooms)),
	}
	for _, rm := range rooms {
		sched := reservation.NewDaySchedule(rm.ID, date, bookings)
		board.Rooms = append(board.Rooms, RoomBoardEntry{
			Room:        rm,
			IsAvailable: sched.IsAvailable(),
			Bookings:    slotViews(sched.Slots()),
		})
	}
	return board, nil
}

func (q *availabilityQueriesImpl) Prefill(ctx context.Context, rawRoomID, rawDate string) (*BookingPrefill, error) {
	prefill := &BookingPrefill{}

	if id, err := uuid.Parse(rawRoomID); err == nil {
		rm, err := q.rooms.FindByID(ctx, id)
		switch {
		case err == nil:
			prefill.Room = rm
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	if d, err := reservation.ParseDate(rawDate); err == nil {
		s := d.String()
		prefill.Date = &s
	}
	return prefill, nil
}

func (q *availabilityQueriesImpl) resolveDate(raw string) reservation.Date {
	if raw != "" {
		if d, err := reservation.ParseDate(raw); err == nil {
			return d
		}
	}
	return reservation.DateOf(q.clock.Now())
}

func slotViews(slots []reservation.TimeSlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			Start:        s.Start().String(),
			End:          s.End().String(),
			StartDisplay: s.Start().Display(),
			EndDisplay:   s.End().Display(),
		})
	}
	return views
}

func mapNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
