package gormstore

import (
	"errors"
	"log/slog"
	"strings"

	"room-reservation/internal/infra"

	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// wrapErr maps gorm and driver errors onto repository error kinds. gorm.Config.TranslateError
// covers PostgreSQL; modernc SQLite errors are classified by their result code.
func wrapErr(logger *slog.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return infra.WrapRepoErr(logger, infra.KindForeignKeyViolated, msg, err)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		if kind, ok := sqliteConstraintKind(sqliteErr); ok {
			return infra.WrapRepoErr(logger, kind, msg, err)
		}
	}

	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}

func sqliteConstraintKind(err *sqlite.Error) (infra.RepositoryErrorKind, bool) {
	switch err.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return infra.KindDuplicateKey, true
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return infra.KindForeignKeyViolated, true
	}
	if err.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return "", false
	}
	switch text := err.Error(); {
	case strings.Contains(text, "UNIQUE constraint failed"):
		return infra.KindDuplicateKey, true
	case strings.Contains(text, "FOREIGN KEY constraint failed"):
		return infra.KindForeignKeyViolated, true
	}
	return "", false
}

func notFound(logger *slog.Logger, msg string) error {
	return infra.WrapRepoErr(logger, infra.KindNotFound, msg, nil)
}
