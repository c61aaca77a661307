package converter

import (
	"room-reservation/internal/domain/reservation"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// DetailRow is the shape shared by every query joining reservations with rooms and users.
type DetailRow = sqlc.FindReservationDetailByIDRow

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	slot := r.Slot()
	return sqlc.CreateReservationParams{
		ID:           r.ID(),
		UserID:       r.UserID(),
		RoomID:       r.RoomID(),
		Date:         DateToPg(slot.Date()),
		StartTime:    TimeOfDayToPg(slot.Start()),
		EndTime:      TimeOfDayToPg(slot.End()),
		ReminderSent: r.ReminderSent(),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) sqlc.UpdateReservationParams {
	slot := r.Slot()
	return sqlc.UpdateReservationParams{
		ID:           r.ID(),
		RoomID:       r.RoomID(),
		Date:         DateToPg(slot.Date()),
		StartTime:    TimeOfDayToPg(slot.Start()),
		EndTime:      TimeOfDayToPg(slot.End()),
		ReminderSent: r.ReminderSent(),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := SlotFromPg(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.RoomID,
		slot,
		row.ReminderSent,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func DetailFromRow(row DetailRow) (*shared.ReservationDetail, error) {
	res, err := ReservationFromRow(sqlc.Reservations{
		ID:           row.ID,
		UserID:       row.UserID,
		RoomID:       row.RoomID,
		Date:         row.Date,
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		ReminderSent: row.ReminderSent,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	return &shared.ReservationDetail{
		Reservation:   res,
		RoomName:      row.RoomName,
		RoomLocation:  row.RoomLocation,
		OwnerUsername: row.Username,
		OwnerEmail:    pgconv.StringFromPgtype(row.Email),
	}, nil
}

func DetailsFromRows(rows []DetailRow) ([]shared.ReservationDetail, error) {
	out := make([]shared.ReservationDetail, 0, len(rows))
	for _, row := range rows {
		d, err := DetailFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func ReservationViewFromRow(row DetailRow) queries.ReservationView {
	return queries.ReservationView{
		ID:           row.ID,
		RoomID:       row.RoomID,
		RoomName:     row.RoomName,
		RoomLocation: row.RoomLocation,
		UserID:       row.UserID,
		Username:     row.Username,
		UserEmail:    pgconv.StringFromPgtype(row.Email),
		Date:         DateFromPg(row.Date).String(),
		StartTime:    clockString(row.StartTime),
		EndTime:      clockString(row.EndTime),
		ReminderSent: row.ReminderSent,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func ReservationViewsFromRows(rows []DetailRow) []queries.ReservationView {
	out := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReservationViewFromRow(row))
	}
	return out
}

func BookingFromPg(id, roomID uuid.UUID, date pgtype.Date, start, end pgtype.Time) (reservation.Booking, error) {
	slot, err := SlotFromPg(date, start, end)
	if err != nil {
		return reservation.Booking{}, err
	}
	return reservation.Booking{ID: id, RoomID: roomID, Slot: slot}, nil
}

func clockString(pt pgtype.Time) string {
	tod, err := TimeOfDayFromPg(pt)
	if err != nil {
		return ""
	}
	return tod.String()
}
