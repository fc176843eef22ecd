//go:build unit || e2e

package builder

import (
	"lastbite-client/internal/domain/catalog"
)

type RestaurantBuilder struct {
	ID                  int64
	Name                string
	Pickup              bool
	Delivery            bool
	DeliveryFee         float64
	WorkingDays         []string
	WorkingHoursStart   string
	WorkingHoursEnd     string
	FlashDealsAvailable bool
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:                3,
		Name:              "Test Bakery",
		Pickup:            true,
		Delivery:          true,
		DeliveryFee:       10,
		WorkingDays:       []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "22:00",
	}
}

func (r *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(r)
	return r
}

func (r *RestaurantBuilder) Build() catalog.Restaurant {
	return catalog.Restaurant{
		ID:                  r.ID,
		Name:                r.Name,
		Pickup:              r.Pickup,
		Delivery:            r.Delivery,
		DeliveryFee:         r.DeliveryFee,
		WorkingDays:         r.WorkingDays,
		WorkingHoursStart:   r.WorkingHoursStart,
		WorkingHoursEnd:     r.WorkingHoursEnd,
		FlashDealsAvailable: r.FlashDealsAvailable,
	}
}

type ListingBuilder struct {
	ID            int64
	RestaurantID  int64
	Title         string
	PickupPrice   float64
	DeliveryPrice float64
	OriginalPrice float64
	Stock         int
	FreshScore    float64
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:            7,
		RestaurantID:  3,
		Title:         "Surprise box",
		PickupPrice:   20,
		DeliveryPrice: 25,
		OriginalPrice: 60,
		Stock:         5,
		FreshScore:    0.9,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) Build() catalog.Listing {
	return catalog.Listing{
		ID:            l.ID,
		RestaurantID:  l.RestaurantID,
		Title:         l.Title,
		PickupPrice:   l.PickupPrice,
		DeliveryPrice: l.DeliveryPrice,
		OriginalPrice: l.OriginalPrice,
		Stock:         l.Stock,
		FreshScore:    l.FreshScore,
	}
}
