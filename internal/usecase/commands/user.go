package commands

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSelfDelete = errs.New("staff cannot delete their own account")

type CreateUserInput struct {
	RegisterInput
	IsStaff bool
}

// UpdateUserInput leaves nil fields unchanged. An empty Email clears the address.
type UpdateUserInput struct {
	Username *string
	Email    *string
	IsStaff  *bool
	IsActive *bool
}

type DeleteUserResult struct {
	DeletedReservations int64
}

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock
type UserCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateUserInput) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateUserInput) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*DeleteUserResult, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (c *userCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateUserInput) (uuid.UUID, error) {
	if !actor.IsStaff {
		return uuid.Nil, errs.ErrForbidden
	}
	u, err := newAccount(in.RegisterInput, in.IsStaff, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := createAccount(ctx, c.uow, u); err != nil {
		return uuid.Nil, err
	}
	c.logger.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID().String()),
		slog.String("by", actor.UserID.String()))
	return u.ID(), nil
}

func (c *userCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateUserInput) error {
	if !actor.IsStaff {
		return errs.ErrForbidden
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}

		username, err := user.NewUsername(patch.Coalesce(in.Username, u.Username().Value()))
		if err != nil {
			return validationErr(err)
		}
		email, err := user.NewOptionalEmail(patch.Coalesce(in.Email, u.Email().Value()))
		if err != nil {
			return validationErr(err)
		}

		u.UpdateProfile(
			username,
			email,
			patch.Coalesce(in.IsStaff, u.IsStaff()),
			patch.Coalesce(in.IsActive, u.IsActive()),
			c.clock.Now(),
		)
		if err := tx.Users().Update(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateUsername)
			}
			return dbErr(err)
		}
		return nil
	})
}

// Delete removes the user together with their reservations.
func (c *userCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*DeleteUserResult, error) {
	if !actor.IsStaff {
		return nil, errs.ErrForbidden
	}
	if actor.UserID == id {
		return nil, ErrSelfDelete
	}

	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, id); err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}
		n, err := tx.Reservations().DeleteByUser(ctx, id)
		if err != nil {
			return dbErr(err)
		}
		if err := tx.Users().Delete(ctx, id); err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "user deleted",
		slog.String("user_id", id.String()),
		slog.Int64("reservations_deleted", deleted))
	return &DeleteUserResult{DeletedReservations: deleted}, nil
}
