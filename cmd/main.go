package main

import (
	"context"
	"log/slog"
	"os"

	"lastbite-client/cmd/bootstrap"
	"lastbite-client/internal/pkg/errs"
	"lastbite-client/internal/usecase/commands"
	"lastbite-client/internal/usecase/queries"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Missing .env is fine; real deployments inject the environment.
	_ = godotenv.Load()
}

// startSession warms the client: resolve nearby restaurants, pull the
// authoritative cart, and print the derived checkout view. The process
// exits once the session state is reported.
func startSession(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	carts commands.CartCommands,
	checkout queries.CheckoutQueries,
	logger *slog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer func() {
					_ = shutdowner.Shutdown()
				}()
				ctx := context.Background()

				if err := carts.RefreshNearby(ctx); err != nil {
					logger.Warn("nearby refresh failed", "error", err)
				}

				result, err := carts.FetchCart(ctx)
				if err != nil {
					if errs.Is(err, commands.ErrAuthMissing) {
						logger.Error("no usable session credential; set API_TOKEN")
						return
					}
					logger.Error("cart fetch failed", "error", err)
					return
				}
				if !result.RestaurantResolved && !result.Lines.IsEmpty() {
					logger.Warn("cart restaurant could not be resolved", "lines", len(result.Lines))
				}

				view := checkout.Checkout()
				logger.Info("session ready",
					"cart_lines", len(result.Lines),
					"total", view.Quote.Total,
					"pickup", view.Pickup,
					"can_submit", view.CanSubmit,
				)
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			startSession,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop cleanly", "error", err)
	}
}
