//go:build unit || e2e

package builder

import (
	"lastbite-client/internal/domain/cart"
)

type CartLineBuilder struct {
	ListingID    int64
	RestaurantID int64
	Count        int
}

func NewCartLineBuilder() *CartLineBuilder {
	return &CartLineBuilder{
		ListingID:    7,
		RestaurantID: 3,
		Count:        1,
	}
}

func (c *CartLineBuilder) With(mutate func(*CartLineBuilder)) *CartLineBuilder {
	mutate(c)
	return c
}

func (c *CartLineBuilder) Build() cart.Line {
	return cart.Line{
		ListingID:    c.ListingID,
		RestaurantID: c.RestaurantID,
		Count:        c.Count,
	}
}
