package gormstore

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const detailColumns = "r.id, r.user_id, r.room_id, r.date, r.start_time, r.end_time, r.reminder_sent, " +
	"r.created_at, r.updated_at, rm.name AS room_name, rm.location AS room_location, u.username, u.email"

func detailQuery(db *gorm.DB) *gorm.DB {
	return db.Table("reservations AS r").
		Select(detailColumns).
		Joins("JOIN rooms AS rm ON rm.id = r.room_id").
		Joins("JOIN users AS u ON u.id = r.user_id")
}

type RoomRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	m := toRoomModel(rm)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr(r.logger, "failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	res := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", rm.ID()).Updates(map[string]any{
		"name":       rm.Name().Value(),
		"location":   rm.Location().Value(),
		"capacity":   rm.Capacity().Value(),
		"updated_at": rm.UpdatedAt(),
	})
	if res.Error != nil {
		return wrapErr(r.logger, "failed to update room", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.logger, "room not found")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&roomModel{})
	if res.Error != nil {
		return wrapErr(r.logger, "failed to delete room", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.logger, "room not found")
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find room", err)
	}
	rm, err := toDomainRoom(m)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load room", err)
	}
	return rm, nil
}

type UserRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	m := toUserModel(u)
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", u.ID()).Updates(map[string]any{
		"username":   m.Username,
		"email":      m.Email,
		"is_staff":   m.IsStaff,
		"is_active":  m.IsActive,
		"updated_at": m.UpdatedAt,
	})
	if res.Error != nil {
		return wrapErr(r.logger, "failed to update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userModel{})
	if res.Error != nil {
		return wrapErr(r.logger, "failed to delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*user.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(where, arg).First(&m).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find user", err)
	}
	u, err := toDomainUser(m)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load user", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Update("last_login", at)
	if res.Error != nil {
		return wrapErr(r.logger, "failed to update user last login", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.logger, "user not found")
	}
	return nil
}

type ReservationRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	m := toReservationModel(res)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return wrapErr(r.logger, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	m := toReservationModel(res)
	result := r.db.WithContext(ctx).Model(&reservationModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"room_id":       m.RoomID,
		"date":          m.Date,
		"start_time":    m.StartTime,
		"end_time":      m.EndTime,
		"reminder_sent": m.ReminderSent,
		"updated_at":    m.UpdatedAt,
	})
	if result.Error != nil {
		return wrapErr(r.logger, "failed to update reservation", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(r.logger, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&reservationModel{})
	if result.Error != nil {
		return wrapErr(r.logger, "failed to delete reservation", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(r.logger, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var m reservationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find reservation", err)
	}
	res, err := toDomainReservation(m)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*shared.ReservationDetail, error) {
	var m detailModel
	if err := detailQuery(r.db.WithContext(ctx)).Where("r.id = ?", id).Take(&m).Error; err != nil {
		return nil, wrapErr(r.logger, "failed to find reservation detail", err)
	}
	detail, err := toDetail(m)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load reservation detail", err)
	}
	return detail, nil
}

// LockRoomDay uses an advisory lock on PostgreSQL. SQLite runs on one connection, so writers are
// already serialized.
func (r *ReservationRepository) LockRoomDay(ctx context.Context, roomID uuid.UUID, date reservation.Date) error {
	if !isPostgres(r.db) {
		return nil
	}
	key := roomID.String() + "/" + date.String()
	if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
		return wrapErr(r.logger, "failed to lock room day", err)
	}
	return nil
}

func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("room_id = ? AND date = ?", roomID, dayDate{slot.Date()}).
		Where("start_time < ? AND end_time > ?", clockTime{slot.End()}, clockTime{slot.Start()})
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, wrapErr(r.logger, "failed to check overlapping reservations", err)
	}
	return n > 0, nil
}

func (r *ReservationRepository) ListDetailsByRoom(ctx context.Context, roomID uuid.UUID) ([]shared.ReservationDetail, error) {
	var rows []detailModel
	err := detailQuery(r.db.WithContext(ctx)).
		Where("r.room_id = ?", roomID).
		Order("r.date, r.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list room reservations", err)
	}
	return r.toDetails(rows)
}

func (r *ReservationRepository) DeleteByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&reservationModel{})
	if result.Error != nil {
		return 0, wrapErr(r.logger, "failed to delete room reservations", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ReservationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&reservationModel{})
	if result.Error != nil {
		return 0, wrapErr(r.logger, "failed to delete user reservations", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ReservationRepository) ListReminderCandidates(ctx context.Context, from, to reservation.Date) ([]shared.ReservationDetail, error) {
	var rows []detailModel
	err := detailQuery(r.db.WithContext(ctx)).
		Where("r.reminder_sent = ?", false).
		Where("r.date BETWEEN ? AND ?", dayDate{from}, dayDate{to}).
		Order("r.date, r.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list reminder candidates", err)
	}
	return r.toDetails(rows)
}

func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&reservationModel{}).Where("id = ?", id).Updates(map[string]any{
		"reminder_sent": true,
		"updated_at":    at,
	})
	if result.Error != nil {
		return wrapErr(r.logger, "failed to mark reminder sent", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(r.logger, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) toDetails(rows []detailModel) ([]shared.ReservationDetail, error) {
	out := make([]shared.ReservationDetail, 0, len(rows))
	for _, row := range rows {
		d, err := toDetail(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load reservation details", err)
		}
		out = append(out, *d)
	}
	return out, nil
}
