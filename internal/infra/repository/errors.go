package repository

import (
	"errors"
	"log/slog"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapQueryErr maps a driver error onto a repository error kind.
func wrapQueryErr(logger *slog.Logger, msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(logger, infra.KindForeignKeyViolated, msg, err)
		}
	}

	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}

func notFound(logger *slog.Logger, msg string) error {
	return infra.WrapRepoErr(logger, infra.KindNotFound, msg, nil)
}
