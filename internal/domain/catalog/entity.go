package catalog

import (
	"lastbite-client/internal/domain/schedule"
)

// Listing is a menu item published by a restaurant. Owned by the remote
// catalog; read-only from the cart engine's perspective.
type Listing struct {
	ID            int64   `json:"id"`
	RestaurantID  int64   `json:"restaurant_id"`
	Title         string  `json:"title"`
	PickupPrice   float64 `json:"pick_up_price"`
	DeliveryPrice float64 `json:"delivery_price"`
	OriginalPrice float64 `json:"original_price"`
	Stock         int     `json:"count"`
	FreshScore    float64 `json:"fresh_score"`
}

// Restaurant carries the fulfillment-relevant subset of restaurant metadata.
type Restaurant struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	Pickup              bool     `json:"pickup"`
	Delivery            bool     `json:"delivery"`
	DeliveryFee         float64  `json:"deliveryFee"`
	WorkingDays         []string `json:"workingDays"`
	WorkingHoursStart   string   `json:"workingHoursStart"`
	WorkingHoursEnd     string   `json:"workingHoursEnd"`
	FlashDealsAvailable bool     `json:"flash_deals_available"`
}

// Window parses the restaurant's configured working days and hours.
func (r Restaurant) Window() (schedule.Window, error) {
	return schedule.ParseWindow(r.WorkingDays, r.WorkingHoursStart, r.WorkingHoursEnd)
}
