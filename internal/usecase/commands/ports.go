package commands

import (
	"context"

	"lastbite-client/internal/domain/cart"
	"lastbite-client/internal/domain/catalog"
)

// Ports the orchestration layer drives. Implemented by infra/gateway and
// pkg/token; mocked under tests/mock/commands.

type CartGateway interface {
	FetchCart(ctx context.Context, bearer string) (cart.Lines, error)
	AddItem(ctx context.Context, bearer string, listingID int64, count int) error
	UpdateItem(ctx context.Context, bearer string, listingID int64, count int) error
	RemoveItem(ctx context.Context, bearer string, listingID int64) error
	ResetCart(ctx context.Context, bearer string) error
}

type CatalogGateway interface {
	NearbyRestaurants(ctx context.Context, bearer string) ([]catalog.Restaurant, error)
	RestaurantByID(ctx context.Context, bearer string, id int64) (*catalog.Restaurant, error)
	ListingsByRestaurant(ctx context.Context, bearer string, restaurantID int64, page, perPage int) ([]catalog.Listing, error)
}

type TokenSource interface {
	Token() (string, error)
}
