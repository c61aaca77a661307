package readstore

import (
	"log/slog"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/pgconv"
)

func wrapQueryErr(logger *slog.Logger, msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}
