package readstore

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/readstore/user.go -package=readstoremock
type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find user by ID", err)
	}

	view := converter.UserViewFromRow(row)
	return &view, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to list users", err)
	}

	views := make([]queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, converter.UserViewFromRow(row))
	}
	return views, nil
}
