package components

import (
	"log/slog"

	"lastbite-client/internal/infra/gateway"
	"lastbite-client/internal/pkg/config"
	"lastbite-client/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) *gateway.Client {
			return gateway.NewClient(cfg.API, logger)
		},
		fx.Annotate(
			gateway.NewCartGateway,
			fx.As(new(commands.CartGateway)),
		),
		fx.Annotate(
			gateway.NewCatalogGateway,
			fx.As(new(commands.CatalogGateway)),
		),
	),
)
