package bootstrap

import (
	"lastbite-client/internal/pkg/clock"
	"lastbite-client/internal/pkg/config"
	"lastbite-client/internal/pkg/token"
	"lastbite-client/internal/usecase/commands"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, clk clock.Clock) *token.StaticSource {
				return token.NewStaticSource(cfg.Auth.Token, clk)
			},
			fx.As(new(commands.TokenSource)),
		),
	),
)
