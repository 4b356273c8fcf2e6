package bootstrap

import (
	"hotelbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PricingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
