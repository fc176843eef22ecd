package bootstrap

import (
	"lastbite-client/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TokenModule,
	components.GatewayModule,
	components.StoreModule,
	components.UseCaseModule,
)
