package components

import (
	"lastbite-client/internal/pkg/clock"
	"lastbite-client/internal/pkg/config"
	"lastbite-client/internal/store"
	"lastbite-client/internal/usecase/commands"
	"lastbite-client/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(
			cartGW commands.CartGateway,
			catalogGW commands.CatalogGateway,
			tokens commands.TokenSource,
			carts *store.CartStore,
			session *store.SessionStore,
			cfg config.Config,
		) commands.CartCommands {
			return commands.NewCartCommands(cartGW, catalogGW, tokens, carts, session, cfg.Session)
		},
		queries.NewCheckoutQueries,
	),
)
