package components

import (
	"lastbite-client/internal/pkg/config"
	"lastbite-client/internal/store"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		store.NewCartStore,
		func(cfg config.Config) *store.SessionStore {
			return store.NewSessionStore(cfg.Session)
		},
	),
)
