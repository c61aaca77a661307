package queries

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	// BookingsOn returns the bookings of every room on date.
	BookingsOn(ctx context.Context, date reservation.Date) ([]reservation.Booking, error)
	BookingsForRoom(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]reservation.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListUpcomingByUser returns reservations after today, or today ending after now, by date then start.
	ListUpcomingByUser(ctx context.Context, userID uuid.UUID, today reservation.Date, now reservation.TimeOfDay) ([]ReservationView, error)
	// ListAll orders by date desc then start asc and returns at most limit rows after the cursor.
	ListAll(ctx context.Context, after *ReservationCursor, limit int) ([]ReservationView, error)
}

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock
type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListUpcoming(ctx context.Context, actor shared.Actor) ([]ReservationView, error)
	ListAll(ctx context.Context, actor shared.Actor, page Cursor, limit int) (*ReservationPage, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	clock     clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore, clock: clk}
}

// GetByID hides reservations the actor may not manage behind not-found.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrReservationNotFound)
	}
	if !actor.CanManage(view.UserID) {
		return nil, errs.ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListUpcoming(ctx context.Context, actor shared.Actor) ([]ReservationView, error) {
	now := q.clock.Now()
	views, err := q.readStore.ListUpcomingByUser(ctx, actor.UserID, reservation.DateOf(now), reservation.TimeOfDayOf(now))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, actor shared.Actor, page Cursor, limit int) (*ReservationPage, error) {
	if !actor.IsStaff {
		return nil, errs.ErrForbidden
	}
	limit = ValidateLimit(limit)

	var after *ReservationCursor
	if page.After != "" {
		c, err := DecodeReservationCursor(page.After)
		if err != nil {
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrValidation), "invalid cursor")
		}
		after = &c
	}

	// one extra row tells whether another page exists
	views, err := q.readStore.ListAll(ctx, after, limit+1)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &ReservationPage{Items: views}
	if len(views) > limit {
		result.Items = views[:limit]
		last := result.Items[limit-1]
		next, err := cursorOf(last)
		if err != nil {
			return nil, errs.Wrap(err, "build next cursor")
		}
		result.Next = &Cursor{After: EncodeReservationCursor(next)}
	}
	return result, nil
}

func cursorOf(v ReservationView) (ReservationCursor, error) {
	date, err := reservation.ParseDate(v.Date)
	if err != nil {
		return ReservationCursor{}, err
	}
	start, err := reservation.ParseTimeOfDay(v.StartTime)
	if err != nil {
		return ReservationCursor{}, err
	}
	return ReservationCursor{Date: date, Start: start, ID: v.ID}, nil
}
