package commands

import (
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"
)

// lookupErr maps a repository lookup failure onto notFound, everything else onto a database failure.
func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func dbErr(err error) error {
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// validationErr keeps the original message as a user-facing detail.
func validationErr(err error) error {
	return errs.WithDetail(errs.Mark(err, errs.ErrValidation), err.Error())
}
