package gateway

import (
	"context"
	"fmt"
	"net/http"

	"lastbite-client/internal/domain/cart"
)

// CartGateway issues cart CRUD requests against the remote cart resource.
// Stateless; every decision about the local cart lives in the store and
// commands layers.
type CartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

type addItemRequest struct {
	ListingID int64 `json:"listing_id"`
	Count     int   `json:"count,omitempty"`
}

type updateItemRequest struct {
	ListingID int64 `json:"listing_id"`
	Count     int   `json:"count"`
}

func (g *CartGateway) FetchCart(ctx context.Context, bearer string) (cart.Lines, error) {
	var lines cart.Lines
	if err := g.client.call(ctx, bearer, http.MethodGet, "/cart", nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (g *CartGateway) AddItem(ctx context.Context, bearer string, listingID int64, count int) error {
	return g.client.call(ctx, bearer, http.MethodPost, "/cart", addItemRequest{ListingID: listingID, Count: count}, nil)
}

func (g *CartGateway) UpdateItem(ctx context.Context, bearer string, listingID int64, count int) error {
	return g.client.call(ctx, bearer, http.MethodPut, "/cart", updateItemRequest{ListingID: listingID, Count: count}, nil)
}

func (g *CartGateway) RemoveItem(ctx context.Context, bearer string, listingID int64) error {
	return g.client.call(ctx, bearer, http.MethodDelete, fmt.Sprintf("/cart/%d", listingID), nil, nil)
}

func (g *CartGateway) ResetCart(ctx context.Context, bearer string) error {
	return g.client.call(ctx, bearer, http.MethodPost, "/cart/reset", nil, nil)
}
