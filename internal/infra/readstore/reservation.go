package readstore

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation.go -package=readstoremock
type ReservationReadQueries interface {
	ListBookingsOn(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.ListBookingsOnRow, error)
	ListBookingsForRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForRoomParams) ([]sqlc.ListBookingsForRoomRow, error)
	FindReservationDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindReservationDetailByIDRow, error)
	ListUpcomingReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingReservationsByUserParams) ([]sqlc.ListUpcomingReservationsByUserRow, error)
	ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListReservationsFirstPageRow, error)
	ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.ListReservationsKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReservationReadStore) BookingsOn(ctx context.Context, date reservation.Date) ([]reservation.Booking, error) {
	rows, err := r.queries.ListBookingsOn(ctx, r.db, converter.DateToPg(date))
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list bookings by date", err)
	}

	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromPg(row.ID, row.RoomID, row.Date, row.StartTime, row.EndTime)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booking", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *ReservationReadStore) BookingsForRoom(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]reservation.Booking, error) {
	rows, err := r.queries.ListBookingsForRoom(ctx, r.db, sqlc.ListBookingsForRoomParams{
		RoomID: roomID,
		Date:   converter.DateToPg(date),
	})
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list room bookings", err)
	}

	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromPg(row.ID, row.RoomID, row.Date, row.StartTime, row.EndTime)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booking", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.FindReservationDetailByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find reservation", err)
	}

	view := converter.ReservationViewFromRow(row)
	return &view, nil
}

func (r *ReservationReadStore) ListUpcomingByUser(ctx context.Context, userID uuid.UUID, today reservation.Date, now reservation.TimeOfDay) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListUpcomingReservationsByUser(ctx, r.db, sqlc.ListUpcomingReservationsByUserParams{
		UserID:  userID,
		Today:   converter.DateToPg(today),
		NowTime: converter.TimeOfDayToPg(now),
	})
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list upcoming reservations", err)
	}

	details := make([]converter.DetailRow, 0, len(rows))
	for _, row := range rows {
		details = append(details, converter.DetailRow(row))
	}
	return converter.ReservationViewsFromRows(details), nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context, after *queries.ReservationCursor, limit int) ([]queries.ReservationView, error) {
	details := []converter.DetailRow{}

	if after == nil {
		rows, err := r.queries.ListReservationsFirstPage(ctx, r.db, int32(limit)) // #nosec G115 -- limit is capped by ValidateLimit
		if err != nil {
			return nil, wrapQueryErr(r.logger, "failed to list reservations", err)
		}
		for _, row := range rows {
			details = append(details, converter.DetailRow(row))
		}
		return converter.ReservationViewsFromRows(details), nil
	}

	rows, err := r.queries.ListReservationsKeyset(ctx, r.db, sqlc.ListReservationsKeysetParams{
		CursorDate:  converter.DateToPg(after.Date),
		CursorStart: converter.TimeOfDayToPg(after.Start),
		CursorID:    after.ID,
		RowLimit:    int32(limit), // #nosec G115 -- limit is capped by ValidateLimit
	})
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list reservations", err)
	}
	for _, row := range rows {
		details = append(details, converter.DetailRow(row))
	}
	return converter.ReservationViewsFromRows(details), nil
}
