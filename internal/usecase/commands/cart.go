package commands

import (
	"context"
	"log/slog"

	"lastbite-client/internal/domain/cart"
	"lastbite-client/internal/pkg/config"
	"lastbite-client/internal/pkg/errs"
	"lastbite-client/internal/store"
)

var (
	ErrAuthMissing        = errs.New("auth credential missing")
	ErrCartFetchFailed    = errs.New("cart fetch failed")
	ErrCartMutationFailed = errs.New("cart mutation failed")
	ErrNearbyFetchFailed  = errs.New("nearby restaurants fetch failed")
)

// FetchCartResult reports the refetched cart and whether its restaurant
// could be resolved. An unresolved restaurant means the cart refers to a
// restaurant the service no longer knows; clearing the cart in that case
// is the calling page's policy, not this layer's.
type FetchCartResult struct {
	Lines              cart.Lines
	RestaurantResolved bool
}

// CartCommands is the only mutation surface pages may call. Every
// mutating operation applies the optimistic store transition first, then
// the gateway call, then commits or rolls back, and finally refetches the
// cart so server-computed state reaches the client.
type CartCommands interface {
	FetchCart(ctx context.Context) (*FetchCartResult, error)
	AddItem(ctx context.Context, listingID, restaurantID int64) error
	UpdateItem(ctx context.Context, listingID int64, count int) error
	RemoveItem(ctx context.Context, listingID int64) error
	ResetCart(ctx context.Context) error
	RefreshNearby(ctx context.Context) error
	SetPickup(pickup bool)
	SetFlashDealOptIn(optIn bool)
}

type cartUseCaseImpl struct {
	cartGateway    CartGateway
	catalogGateway CatalogGateway
	tokens         TokenSource
	carts          *store.CartStore
	session        *store.SessionStore
	pageSize       int
}

func NewCartCommands(
	cartGateway CartGateway,
	catalogGateway CatalogGateway,
	tokens TokenSource,
	carts *store.CartStore,
	session *store.SessionStore,
	cfg config.SessionConfig,
) CartCommands {
	return &cartUseCaseImpl{
		cartGateway:    cartGateway,
		catalogGateway: catalogGateway,
		tokens:         tokens,
		carts:          carts,
		session:        session,
		pageSize:       cfg.ListingsPageSize,
	}
}

// FetchCart pulls server truth, overwrites the store, and resolves the
// cart's restaurant and menu so pricing has listings to join against.
func (c *cartUseCaseImpl) FetchCart(ctx context.Context) (*FetchCartResult, error) {
	bearer, err := c.resolveToken()
	if err != nil {
		return nil, err
	}

	lines, err := c.cartGateway.FetchCart(ctx, bearer)
	if err != nil {
		return nil, errs.Mark(err, ErrCartFetchFailed)
	}
	c.carts.Replace(lines)

	result := &FetchCartResult{Lines: lines, RestaurantResolved: true}
	restaurantID, ok := lines.RestaurantID()
	if !ok {
		return result, nil
	}

	resolved := false
	if nearby, found := c.session.Nearby(restaurantID); found {
		c.session.SetActiveRestaurant(nearby)
		resolved = true
	}

	// The standalone detail fetch is canonical; the proximity entry only
	// bridges the gap until it lands.
	if detail, detailErr := c.catalogGateway.RestaurantByID(ctx, bearer, restaurantID); detailErr == nil {
		c.session.SetActiveRestaurant(*detail)
		resolved = true
	} else if !resolved {
		slog.Warn("cart refers to unknown restaurant",
			slog.Int64("restaurant_id", restaurantID),
			slog.String("error", detailErr.Error()),
		)
		result.RestaurantResolved = false
		return result, nil
	}

	if listings, listErr := c.catalogGateway.ListingsByRestaurant(ctx, bearer, restaurantID, 1, c.pageSize); listErr == nil {
		c.session.SetListings(listings)
	} else {
		// Pricing simply has nothing to join against until a later fetch.
		slog.Warn("failed to load listings for active restaurant",
			slog.Int64("restaurant_id", restaurantID),
			slog.String("error", listErr.Error()),
		)
	}

	return result, nil
}

func (c *cartUseCaseImpl) AddItem(ctx context.Context, listingID, restaurantID int64) error {
	bearer, err := c.resolveToken()
	if err != nil {
		return err
	}

	if err := c.carts.BeginAdd(listingID, restaurantID); err != nil {
		return err
	}
	if err := c.cartGateway.AddItem(ctx, bearer, listingID, 1); err != nil {
		c.rollback(c.carts.RollbackAdd(listingID), "add", listingID)
		return errs.Mark(err, ErrCartMutationFailed)
	}
	if err := c.carts.CommitAdd(listingID); err != nil {
		slog.Warn("failed to commit optimistic add", "listing_id", listingID, "error", err)
	}

	return c.resync(ctx)
}

// UpdateItem sets a line's quantity. A count at or below zero is a
// removal, never an error.
func (c *cartUseCaseImpl) UpdateItem(ctx context.Context, listingID int64, count int) error {
	if count <= 0 {
		return c.RemoveItem(ctx, listingID)
	}

	bearer, err := c.resolveToken()
	if err != nil {
		return err
	}

	if err := c.carts.BeginUpdate(listingID, count); err != nil {
		return err
	}
	if err := c.cartGateway.UpdateItem(ctx, bearer, listingID, count); err != nil {
		c.rollback(c.carts.RollbackUpdate(listingID), "update", listingID)
		return errs.Mark(err, ErrCartMutationFailed)
	}
	if err := c.carts.CommitUpdate(listingID); err != nil {
		slog.Warn("failed to commit optimistic update", "listing_id", listingID, "error", err)
	}

	return c.resync(ctx)
}

func (c *cartUseCaseImpl) RemoveItem(ctx context.Context, listingID int64) error {
	bearer, err := c.resolveToken()
	if err != nil {
		return err
	}

	if err := c.carts.BeginRemove(listingID); err != nil {
		return err
	}
	if err := c.cartGateway.RemoveItem(ctx, bearer, listingID); err != nil {
		c.rollback(c.carts.RollbackRemove(listingID), "remove", listingID)
		return errs.Mark(err, ErrCartMutationFailed)
	}
	if err := c.carts.CommitRemove(listingID); err != nil {
		slog.Warn("failed to commit optimistic remove", "listing_id", listingID, "error", err)
	}

	return c.resync(ctx)
}

func (c *cartUseCaseImpl) ResetCart(ctx context.Context) error {
	bearer, err := c.resolveToken()
	if err != nil {
		return err
	}

	tok, err := c.carts.BeginReset()
	if err != nil {
		return err
	}
	if err := c.cartGateway.ResetCart(ctx, bearer); err != nil {
		if rbErr := c.carts.RollbackReset(tok); rbErr != nil {
			slog.Warn("failed to roll back optimistic reset", "error", rbErr)
		}
		return errs.Mark(err, ErrCartMutationFailed)
	}
	if err := c.carts.CommitReset(tok); err != nil {
		slog.Warn("failed to commit optimistic reset", "error", err)
	}

	return c.resync(ctx)
}

func (c *cartUseCaseImpl) RefreshNearby(ctx context.Context) error {
	bearer, err := c.resolveToken()
	if err != nil {
		return err
	}

	restaurants, err := c.catalogGateway.NearbyRestaurants(ctx, bearer)
	if err != nil {
		return errs.Mark(err, ErrNearbyFetchFailed)
	}
	c.session.SetNearby(restaurants)
	return nil
}

func (c *cartUseCaseImpl) SetPickup(pickup bool) {
	c.session.SetPickup(pickup)
}

func (c *cartUseCaseImpl) SetFlashDealOptIn(optIn bool) {
	c.session.SetFlashDealOptIn(optIn)
}

// resolveToken fails fast before any optimistic mutation is applied, so
// a missing credential produces nothing to roll back.
func (c *cartUseCaseImpl) resolveToken() (string, error) {
	bearer, err := c.tokens.Token()
	if err != nil {
		return "", errs.Mark(err, ErrAuthMissing)
	}
	return bearer, nil
}

// resync is the mandatory post-mutation refetch: the sole mechanism by
// which server-computed fields reach the client.
func (c *cartUseCaseImpl) resync(ctx context.Context) error {
	_, err := c.FetchCart(ctx)
	return err
}

func (c *cartUseCaseImpl) rollback(err error, op string, listingID int64) {
	if err != nil {
		slog.Warn("failed to roll back optimistic mutation",
			"op", op, "listing_id", listingID, "error", err)
	}
}
