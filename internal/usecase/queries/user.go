package queries

import (
	"context"

	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserInactive = errs.New("user inactive")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// List orders users by username.
	List(ctx context.Context) ([]UserView, error)
}

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, actor shared.Actor) ([]UserView, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrUserNotFound)
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]UserView, error) {
	if !actor.IsStaff {
		return nil, errs.ErrForbidden
	}
	users, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return users, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*UserView, error) {
	if !actor.IsStaff && actor.UserID != id {
		return nil, errs.ErrUserNotFound
	}
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrUserNotFound)
	}
	return u, nil
}
