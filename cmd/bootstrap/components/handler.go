package components

import (
	"room-reservation/internal/handler"
	"room-reservation/internal/handler/api"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Auth           *api.AuthHandler
	Reservation    *api.ReservationHandler
	Room           *api.RoomHandler
	User           *api.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func registerRoutes(p routeParams) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	handler.NewRouter(p.Engine, p.Config, p.Logger, handler.Handlers{
		Auth:        p.Auth,
		Reservation: p.Reservation,
		Room:        p.Room,
		User:        p.User,
	}, p.AuthMiddleware)
	return nil
}
