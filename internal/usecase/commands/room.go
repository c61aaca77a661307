package commands

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase/notify"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	Name     string
	Location string
	Capacity int
}

// UpdateRoomInput leaves nil fields unchanged.
type UpdateRoomInput struct {
	Name     *string
	Location *string
	Capacity *int
}

// NoticeSummary counts the best-effort emails sent for one operation.
type NoticeSummary struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func (s *NoticeSummary) add(o notify.Outcome) {
	switch o.Status {
	case notify.StatusSent:
		s.Sent++
	case notify.StatusFailed:
		s.Failed++
	default:
		s.Skipped++
	}
}

type UpdateRoomResult struct {
	Renamed       bool
	RenameNotices NoticeSummary
}

type DeleteRoomResult struct {
	DeletedReservations int64
}

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock
type RoomCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateRoomInput) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateRoomInput) (*UpdateRoomResult, error)
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*DeleteRoomResult, error)
}

type roomCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher *notify.Dispatcher
	composer   *notify.Composer
	clock      clock.Clock
	logger     *slog.Logger
}

func NewRoomCommands(
	uow shared.UnitOfWork,
	dispatcher *notify.Dispatcher,
	composer *notify.Composer,
	clk clock.Clock,
	logger *slog.Logger,
) RoomCommands {
	return &roomCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		composer:   composer,
		clock:      clk,
		logger:     logger,
	}
}

func (c *roomCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateRoomInput) (uuid.UUID, error) {
	if !actor.IsStaff {
		return uuid.Nil, errs.ErrForbidden
	}
	name, location, capacity, err := roomFields(in.Name, in.Location, in.Capacity)
	if err != nil {
		return uuid.Nil, err
	}

	rm := room.NewRoom(name, location, capacity, c.clock.Now())
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Create(ctx, rm); err != nil {
			return dbErr(err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	c.logger.InfoContext(ctx, "room created", slog.String("room_id", rm.ID().String()))
	return rm.ID(), nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateRoomInput) (*UpdateRoomResult, error) {
	if !actor.IsStaff {
		return nil, errs.ErrForbidden
	}

	var (
		change  room.Change
		newName string
		holders []shared.ReservationDetail
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}

		name, location, capacity, err := roomFields(
			patch.Coalesce(in.Name, rm.Name().Value()),
			patch.Coalesce(in.Location, rm.Location().Value()),
			patch.Coalesce(in.Capacity, rm.Capacity().Value()),
		)
		if err != nil {
			return err
		}

		change = rm.Update(name, location, capacity, c.clock.Now())
		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return dbErr(err)
		}
		newName = rm.Name().Value()

		if change.Renamed {
			holders, err = tx.Reservations().ListDetailsByRoom(ctx, id)
			if err != nil {
				return dbErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &UpdateRoomResult{Renamed: change.Renamed}
	for _, h := range holders {
		msg := c.composer.RoomRenamed(
			notify.Recipient{Username: h.OwnerUsername, Email: h.OwnerEmail},
			change.OldName, newName, h.Reservation.Slot(),
		)
		result.RenameNotices.add(c.dispatcher.Deliver(ctx, msg))
	}
	c.logger.InfoContext(ctx, "room updated",
		slog.String("room_id", id.String()),
		slog.Bool("renamed", change.Renamed),
		slog.Int("notices_sent", result.RenameNotices.Sent))
	return result, nil
}

// Delete removes the room and every reservation in it within one transaction.
func (c *roomCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*DeleteRoomResult, error) {
	if !actor.IsStaff {
		return nil, errs.ErrForbidden
	}

	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, id); err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		n, err := tx.Reservations().DeleteByRoom(ctx, id)
		if err != nil {
			return dbErr(err)
		}
		if err := tx.Rooms().Delete(ctx, id); err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "room deleted",
		slog.String("room_id", id.String()),
		slog.Int64("reservations_deleted", deleted))
	return &DeleteRoomResult{DeletedReservations: deleted}, nil
}

func roomFields(name, location string, capacity int) (room.Name, room.Location, room.Capacity, error) {
	n, err := room.NewName(name)
	if err != nil {
		return room.Name{}, room.Location{}, room.Capacity{}, validationErr(err)
	}
	l, err := room.NewLocation(location)
	if err != nil {
		return room.Name{}, room.Location{}, room.Capacity{}, validationErr(err)
	}
	cp, err := room.NewCapacity(capacity)
	if err != nil {
		return room.Name{}, room.Location{}, room.Capacity{}, validationErr(err)
	}
	return n, l, cp, nil
}
