package gormstore

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomReadStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRoomReadStore(db *gorm.DB, logger *slog.Logger) *RoomReadStore {
	return &RoomReadStore{db: db, logger: logger}
}

func (r *RoomReadStore) List(ctx context.Context) ([]queries.RoomView, error) {
	var rows []roomModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to list rooms", err)
	}

	views := make([]queries.RoomView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRoomView(row))
	}
	return views, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var row roomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find room", err)
	}
	view := toRoomView(row)
	return &view, nil
}

type UserReadStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserReadStore(db *gorm.DB, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{db: db, logger: logger}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var row userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find user", err)
	}
	view := toUserView(row)
	return &view, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("username").Find(&rows).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to list users", err)
	}

	views := make([]queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

type ReservationReadStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewReservationReadStore(db *gorm.DB, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{db: db, logger: logger}
}

func (r *ReservationReadStore) BookingsOn(ctx context.Context, date reservation.Date) ([]reservation.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Select("id, room_id, date, start_time, end_time").
		Where("date = ?", dayDate{date}).
		Order("room_id, start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list bookings by date", err)
	}
	return r.toBookings(rows)
}

func (r *ReservationReadStore) BookingsForRoom(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]reservation.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Select("id, room_id, date, start_time, end_time").
		Where("room_id = ? AND date = ?", roomID, dayDate{date}).
		Order("start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list room bookings", err)
	}
	return r.toBookings(rows)
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var row detailModel
	if err := detailQuery(r.db.WithContext(ctx)).Where("r.id = ?", id).Take(&row).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find reservation", err)
	}
	view := toReservationView(row)
	return &view, nil
}

func (r *ReservationReadStore) ListUpcomingByUser(ctx context.Context, userID uuid.UUID, today reservation.Date, now reservation.TimeOfDay) ([]queries.ReservationView, error) {
	var rows []detailModel
	err := detailQuery(r.db.WithContext(ctx)).
		Where("r.user_id = ?", userID).
		Where("r.date > ? OR (r.date = ? AND r.end_time > ?)", dayDate{today}, dayDate{today}, clockTime{now}).
		Order("r.date, r.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list upcoming reservations", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context, after *queries.ReservationCursor, limit int) ([]queries.ReservationView, error) {
	q := detailQuery(r.db.WithContext(ctx))
	if after != nil {
		d, s := dayDate{after.Date}, clockTime{after.Start}
		q = q.Where("r.date < ? OR (r.date = ? AND (r.start_time > ? OR (r.start_time = ? AND r.id > ?)))",
			d, d, s, s, after.ID)
	}

	var rows []detailModel
	err := q.Order("r.date DESC, r.start_time ASC, r.id ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list reservations", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) toBookings(rows []bookingModel) ([]reservation.Booking, error) {
	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booking", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func toReservationViews(rows []detailModel) []queries.ReservationView {
	views := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationView(row))
	}
	return views
}
