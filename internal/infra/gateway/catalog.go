package gateway

import (
	"context"
	"fmt"
	"net/http"

	"lastbite-client/internal/domain/catalog"
)

// CatalogGateway reads restaurant and listing data the cart engine joins
// against. Read-only collaborator surface.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) NearbyRestaurants(ctx context.Context, bearer string) ([]catalog.Restaurant, error) {
	var restaurants []catalog.Restaurant
	if err := g.client.call(ctx, bearer, http.MethodGet, "/restaurants/nearby", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (g *CatalogGateway) RestaurantByID(ctx context.Context, bearer string, id int64) (*catalog.Restaurant, error) {
	var restaurant catalog.Restaurant
	if err := g.client.call(ctx, bearer, http.MethodGet, fmt.Sprintf("/restaurants/%d", id), nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (g *CatalogGateway) ListingsByRestaurant(ctx context.Context, bearer string, restaurantID int64, page, perPage int) ([]catalog.Listing, error) {
	var listings []catalog.Listing
	path := fmt.Sprintf("/restaurants/%d/listings?page=%d&perPage=%d", restaurantID, page, perPage)
	if err := g.client.call(ctx, bearer, http.MethodGet, path, nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
