package components

import (
	"hotelbook/internal/pkg/clock"
	"hotelbook/internal/pkg/config"
	"hotelbook/internal/usecase"
	"hotelbook/internal/usecase/commands"
	"hotelbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewReceiptCommands,
		commands.NewStaffCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewDashboardQueries(readStore queries.StayReadStore, cfg config.Config) queries.DashboardQueries {
	return queries.NewDashboardQueries(readStore, cfg.Hotel.Inventory)
}
