package gormstore

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
)

func toRoomModel(r *room.Room) roomModel {
	return roomModel{
		ID:        r.ID(),
		Name:      r.Name().Value(),
		Location:  r.Location().Value(),
		Capacity:  r.Capacity().Value(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func toDomainRoom(m roomModel) (*room.Room, error) {
	name, err := room.NewName(m.Name)
	if err != nil {
		return nil, errs.Wrap(err, "stored room name")
	}
	location, err := room.NewLocation(m.Location)
	if err != nil {
		return nil, errs.Wrap(err, "stored room location")
	}
	capacity, err := room.NewCapacity(m.Capacity)
	if err != nil {
		return nil, errs.Wrap(err, "stored room capacity")
	}
	return room.ReconstructRoom(m.ID, name, location, capacity, m.CreatedAt, m.UpdatedAt), nil
}

func toRoomView(m roomModel) queries.RoomView {
	return queries.RoomView{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Capacity:  m.Capacity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toUserModel(u *user.User) userModel {
	return userModel{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        ptr.NonEmpty(u.Email().Value()),
		PasswordHash: u.PasswordHash(),
		IsStaff:      u.IsStaff(),
		IsActive:     u.IsActive(),
		LastLogin:    u.LastLogin(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func toDomainUser(m userModel) (*user.User, error) {
	username, err := user.NewUsername(m.Username)
	if err != nil {
		return nil, errs.Wrap(err, "stored username")
	}
	email, err := user.NewOptionalEmail(ptr.Deref(m.Email))
	if err != nil {
		return nil, errs.Wrap(err, "stored email")
	}
	return user.ReconstructUser(m.ID, username, email, m.PasswordHash, m.IsStaff, m.IsActive, m.LastLogin, m.CreatedAt, m.UpdatedAt), nil
}

func toUserView(m userModel) queries.UserView {
	return queries.UserView{
		ID:        m.ID,
		Username:  m.Username,
		Email:     ptr.Deref(m.Email),
		IsStaff:   m.IsStaff,
		IsActive:  m.IsActive,
		LastLogin: m.LastLogin,
		CreatedAt: m.CreatedAt,
	}
}

func toReservationModel(r *reservation.Reservation) reservationModel {
	slot := r.Slot()
	return reservationModel{
		ID:           r.ID(),
		UserID:       r.UserID(),
		RoomID:       r.RoomID(),
		Date:         dayDate{slot.Date()},
		StartTime:    clockTime{slot.Start()},
		EndTime:      clockTime{slot.End()},
		ReminderSent: r.ReminderSent(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func toDomainReservation(m reservationModel) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(m.Date.Date, m.StartTime.TimeOfDay, m.EndTime.TimeOfDay)
	if err != nil {
		return nil, errs.Wrap(err, "stored slot")
	}
	return reservation.ReconstructReservation(m.ID, m.UserID, m.RoomID, slot, m.ReminderSent, m.CreatedAt, m.UpdatedAt), nil
}

func toDetail(m detailModel) (*shared.ReservationDetail, error) {
	res, err := toDomainReservation(reservationModel{
		ID:           m.ID,
		UserID:       m.UserID,
		RoomID:       m.RoomID,
		Date:         m.Date,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		ReminderSent: m.ReminderSent,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	return &shared.ReservationDetail{
		Reservation:   res,
		RoomName:      m.RoomName,
		RoomLocation:  m.RoomLocation,
		OwnerUsername: m.Username,
		OwnerEmail:    ptr.Deref(m.Email),
	}, nil
}

func toReservationView(m detailModel) queries.ReservationView {
	return queries.ReservationView{
		ID:           m.ID,
		RoomID:       m.RoomID,
		RoomName:     m.RoomName,
		RoomLocation: m.RoomLocation,
		UserID:       m.UserID,
		Username:     m.Username,
		UserEmail:    ptr.Deref(m.Email),
		Date:         m.Date.String(),
		StartTime:    m.StartTime.String(),
		EndTime:      m.EndTime.String(),
		ReminderSent: m.ReminderSent,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBooking(m bookingModel) (reservation.Booking, error) {
	slot, err := reservation.NewTimeSlot(m.Date.Date, m.StartTime.TimeOfDay, m.EndTime.TimeOfDay)
	if err != nil {
		return reservation.Booking{}, errs.Wrap(err, "stored slot")
	}
	return reservation.Booking{ID: m.ID, RoomID: m.RoomID, Slot: slot}, nil
}
