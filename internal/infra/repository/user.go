package repository

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewUserRepository(queries *sqlc.Queries, db sqlc.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return wrapQueryErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	n, err := r.queries.UpdateUser(ctx, r.db, converter.UserToUpdateParams(u))
	if err != nil {
		return wrapQueryErr(r.logger, "failed to update user", err)
	}
	if n == 0 {
		return notFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return wrapQueryErr(r.logger, "failed to delete user", err)
	}
	if n == 0 {
		return notFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find user by ID", err)
	}
	return r.toDomain(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row, err := r.queries.FindUserByUsername(ctx, r.db, username)
	if err != nil {
		return nil, wrapQueryErr(r.logger, "failed to find user by username", err)
	}
	return r.toDomain(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.queries.UpdateUserLastLogin(ctx, r.db, sqlc.UpdateUserLastLoginParams{
		ID:        id,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return wrapQueryErr(r.logger, "failed to update user last login", err)
	}
	if n == 0 {
		return notFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) toDomain(row sqlc.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load user", err)
	}
	return u, nil
}
