package shared

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock
type UnitOfWork interface {
	// Within runs fn in one write transaction, retried on serialization failure or deadlock.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Users() UserRepository
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*ReservationDetail, error)

	// LockRoomDay serializes writers of one room and date until the transaction ends.
	LockRoomDay(ctx context.Context, roomID uuid.UUID, date reservation.Date) error
	// ExistsOverlapping applies start < slot.end AND end > slot.start on the slot's room and date.
	ExistsOverlapping(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error)

	ListDetailsByRoom(ctx context.Context, roomID uuid.UUID) ([]ReservationDetail, error)
	DeleteByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListReminderCandidates returns unsent reservations dated within [from, to].
	ListReminderCandidates(ctx context.Context, from, to reservation.Date) ([]ReservationDetail, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
