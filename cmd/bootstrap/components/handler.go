package components

import (
	"hotelbook/internal/handler"
	"hotelbook/internal/handler/api"
	"hotelbook/internal/handler/middleware"
	"hotelbook/internal/pkg/config"
	"hotelbook/internal/pkg/jwt"
	"hotelbook/internal/usecase/commands"
	"hotelbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewBookingHandler,
		api.NewPricingHandler,
		api.NewDashboardHandler,
		api.NewReceiptHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, userQueries, jwtService, cfg.Cookie)
}
