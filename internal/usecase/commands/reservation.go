package commands

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/notify"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSlotTaken = errs.New("the time slot for this room has been taken")

type ReservationInput struct {
	RoomID uuid.UUID
	Date   reservation.Date
	Start  reservation.TimeOfDay
	End    reservation.TimeOfDay
}

func (in ReservationInput) slot() (reservation.TimeSlot, error) {
	s, err := reservation.NewTimeSlot(in.Date, in.Start, in.End)
	if err != nil {
		return reservation.TimeSlot{}, validationErr(err)
	}
	return s, nil
}

type ReservationResult struct {
	ReservationID uuid.UUID
	Notification  notify.Outcome
}

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock
type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, in ReservationInput) (*ReservationResult, error)
	Edit(ctx context.Context, actor shared.Actor, id uuid.UUID, in ReservationInput) (*ReservationResult, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationResult, error)
	AdminCreate(ctx context.Context, actor shared.Actor, ownerID uuid.UUID, in ReservationInput) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher *notify.Dispatcher
	composer   *notify.Composer
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	dispatcher *notify.Dispatcher,
	composer *notify.Composer,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		composer:   composer,
		clock:      clk,
		logger:     logger,
	}
}

// booking carries what the notification needs out of the transaction.
type booking struct {
	id        uuid.UUID
	slot      reservation.TimeSlot
	roomName  string
	recipient notify.Recipient
}

func (r *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, in ReservationInput) (*ReservationResult, error) {
	b, err := r.book(ctx, actor.UserID, in)
	if err != nil {
		return nil, err
	}
	outcome := r.dispatcher.Deliver(ctx, r.composer.Confirmation(b.recipient, b.roomName, b.slot))
	r.logOutcome(ctx, "reservation created", b.id, outcome)
	return &ReservationResult{ReservationID: b.id, Notification: outcome}, nil
}

func (r *reservationCommandsImpl) AdminCreate(ctx context.Context, actor shared.Actor, ownerID uuid.UUID, in ReservationInput) (*ReservationResult, error) {
	if !actor.IsStaff {
		return nil, errs.ErrForbidden
	}
	b, err := r.book(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}
	outcome := r.dispatcher.Deliver(ctx, r.composer.OnBehalf(b.recipient, b.roomName, b.slot))
	r.logOutcome(ctx, "reservation created on behalf", b.id, outcome)
	return &ReservationResult{ReservationID: b.id, Notification: outcome}, nil
}

func (r *reservationCommandsImpl) book(ctx context.Context, ownerID uuid.UUID, in ReservationInput) (*booking, error) {
	slot, err := in.slot()
	if err != nil {
		return nil, err
	}

	var b booking
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByID(ctx, in.RoomID)
		if err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		owner, err := tx.Users().FindByID(ctx, ownerID)
		if err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}

		if err := r.ensureFree(ctx, tx, rm.ID(), slot, nil); err != nil {
			return err
		}

		res, err := reservation.NewReservation(owner.ID(), rm.ID(), slot, r.clock.Now())
		if err != nil {
			return validationErr(err)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return dbErr(err)
		}

		b = booking{id: res.ID(), slot: slot, roomName: rm.Name().Value(), recipient: recipientOf(owner)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *reservationCommandsImpl) Edit(ctx context.Context, actor shared.Actor, id uuid.UUID, in ReservationInput) (*ReservationResult, error) {
	slot, err := in.slot()
	if err != nil {
		return nil, err
	}

	var b booking
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		if !actor.CanManage(res.UserID()) {
			return errs.ErrReservationNotFound
		}

		rm, err := tx.Rooms().FindByID(ctx, in.RoomID)
		if err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		if err := r.ensureFree(ctx, tx, rm.ID(), slot, &id); err != nil {
			return err
		}

		if err := res.Reschedule(rm.ID(), slot, r.clock.Now()); err != nil {
			return validationErr(err)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return dbErr(err)
		}

		owner, err := tx.Users().FindByID(ctx, res.UserID())
		if err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}
		b = booking{id: res.ID(), slot: slot, roomName: rm.Name().Value(), recipient: recipientOf(owner)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := r.dispatcher.Deliver(ctx, r.composer.Updated(b.recipient, b.roomName, b.slot))
	r.logOutcome(ctx, "reservation updated", b.id, outcome)
	return &ReservationResult{ReservationID: b.id, Notification: outcome}, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationResult, error) {
	var (
		b       booking
		byStaff bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		detail, err := tx.Reservations().FindDetailByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		res := detail.Reservation
		if !actor.CanManage(res.UserID()) {
			return errs.ErrReservationNotFound
		}

		// captured before the row goes away
		b = booking{
			id:        res.ID(),
			slot:      res.Slot(),
			roomName:  detail.RoomName,
			recipient: notify.Recipient{Username: detail.OwnerUsername, Email: detail.OwnerEmail},
		}
		byStaff = actor.IsStaff && !res.IsOwnedBy(actor.UserID)

		if err := tx.Reservations().Delete(ctx, id); err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := r.dispatcher.Deliver(ctx, r.composer.Canceled(b.recipient, b.roomName, b.slot, byStaff))
	r.logOutcome(ctx, "reservation canceled", b.id, outcome)
	return &ReservationResult{ReservationID: b.id, Notification: outcome}, nil
}

// ensureFree locks the room's day and rejects the slot when it overlaps another booking.
func (r *reservationCommandsImpl) ensureFree(ctx context.Context, tx shared.Tx, roomID uuid.UUID, slot reservation.TimeSlot, exclude *uuid.UUID) error {
	if err := tx.Reservations().LockRoomDay(ctx, roomID, slot.Date()); err != nil {
		return dbErr(err)
	}
	taken, err := tx.Reservations().ExistsOverlapping(ctx, roomID, slot, exclude)
	if err != nil {
		return dbErr(err)
	}
	if taken {
		return ErrSlotTaken
	}
	return nil
}

func (r *reservationCommandsImpl) logOutcome(ctx context.Context, msg string, id uuid.UUID, outcome notify.Outcome) {
	r.logger.InfoContext(ctx, msg,
		slog.String("reservation_id", id.String()),
		slog.String("email", string(outcome.Status)))
}

func recipientOf(u *user.User) notify.Recipient {
	return notify.Recipient{Username: u.Username().Value(), Email: u.Email().Value()}
}
