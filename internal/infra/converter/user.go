package converter

import (
	"room-reservation/internal/domain/user"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        pgconv.NullableString(u.Email().Value()),
		PasswordHash: u.PasswordHash(),
		IsStaff:      u.IsStaff(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		ID:        u.ID(),
		Username:  u.Username().Value(),
		Email:     pgconv.NullableString(u.Email().Value()),
		IsStaff:   u.IsStaff(),
		IsActive:  u.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, errs.Wrap(err, "stored username")
	}
	email, err := user.NewOptionalEmail(pgconv.StringFromPgtype(row.Email))
	if err != nil {
		return nil, errs.Wrap(err, "stored email")
	}
	return user.ReconstructUser(
		row.ID,
		username,
		email,
		row.PasswordHash,
		row.IsStaff,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserViewFromRow(row sqlc.Users) queries.UserView {
	return queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		Email:     pgconv.StringFromPgtype(row.Email),
		IsStaff:   row.IsStaff,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
