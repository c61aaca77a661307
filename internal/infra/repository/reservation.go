package repository

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	FindReservationDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindReservationDetailByIDRow, error)
	LockRoomDay(ctx context.Context, db sqlc.DBTX, lockKey string) error
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
	ListReservationDetailsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.ListReservationDetailsByRoomRow, error)
	DeleteReservationsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) (int64, error)
	DeleteReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ListReminderCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReminderCandidatesParams) ([]sqlc.ListReminderCandidatesRow, error)
	MarkReminderSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReminderSentParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReservationRepository(queries *sqlc.Queries, db sqlc.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return wrapQueryErr(r.logger, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return wrapQueryErr(r.logger, "failed to update reservation", err)
	}
	if n == 0 {
		return notFound(r.logger, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return wrapQueryErr(r.logger, "failed to delete reservation", err)
	}
	if n == 0 {
		return notFound(r.logger, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*shared.ReservationDetail, error) {
	row, err := r.queries.FindReservationDetailByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find reservation detail", err)
	}
	detail, err := converter.DetailFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load reservation detail", err)
	}
	return detail, nil
}

// LockRoomDay takes a transaction-scoped advisory lock keyed by room and date.
func (r *ReservationRepository) LockRoomDay(ctx context.Context, roomID uuid.UUID, date reservation.Date) error {
	if err := r.queries.LockRoomDay(ctx, r.db, LockKey(roomID, date)); err != nil {
		return wrapQueryErr(r.logger, "failed to lock room day", err)
	}
	return nil
}

func LockKey(roomID uuid.UUID, date reservation.Date) string {
	return roomID.String() + "/" + date.String()
}

func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	taken, err := r.queries.ExistsOverlappingReservation(ctx, r.db, sqlc.ExistsOverlappingReservationParams{
		RoomID:    roomID,
		Date:      converter.DateToPg(slot.Date()),
		SlotEnd:   converter.TimeOfDayToPg(slot.End()),
		SlotStart: converter.TimeOfDayToPg(slot.Start()),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return false, wrapQueryErr(r.logger, "failed to check overlapping reservations", err)
	}
	return taken, nil
}

func (r *ReservationRepository) ListDetailsByRoom(ctx context.Context, roomID uuid.UUID) ([]shared.ReservationDetail, error) {
	rows, err := r.queries.ListReservationDetailsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list room reservations", err)
	}
	details := make([]converter.DetailRow, 0, len(rows))
	for _, row := range rows {
		details = append(details, converter.DetailRow(row))
	}
	return r.toDetails(details)
}

func (r *ReservationRepository) DeleteByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteReservationsByRoom(ctx, r.db, roomID)
	if err != nil {
		return 0, wrapQueryErr(r.logger, "failed to delete room reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, wrapQueryErr(r.logger, "failed to delete user reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) ListReminderCandidates(ctx context.Context, from, to reservation.Date) ([]shared.ReservationDetail, error) {
	rows, err := r.queries.ListReminderCandidates(ctx, r.db, sqlc.ListReminderCandidatesParams{
		FromDate: converter.DateToPg(from),
		ToDate:   converter.DateToPg(to),
	})
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list reminder candidates", err)
	}
	details := make([]converter.DetailRow, 0, len(rows))
	for _, row := range rows {
		details = append(details, converter.DetailRow(row))
	}
	return r.toDetails(details)
}

func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.queries.MarkReminderSent(ctx, r.db, sqlc.MarkReminderSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return wrapQueryErr(r.logger, "failed to mark reminder sent", err)
	}
	if n == 0 {
		return notFound(r.logger, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) toDetails(rows []converter.DetailRow) ([]shared.ReservationDetail, error) {
	details, err := converter.DetailsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load reservation details", err)
	}
	return details, nil
}
