package bootstrap

import (
	"room-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything but the HTTP layer; the one-shot binaries start from it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MailModule,
	JWTModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	ReminderModule,
	components.HandlerModule,
)
