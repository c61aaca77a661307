package bootstrap

import (
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewClock,
	),
)

// NewClock reports time in APP_TIMEZONE so "today" matches the users' calendar.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewLocalClock(loc), nil
}
