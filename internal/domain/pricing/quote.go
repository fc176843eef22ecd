package pricing

import (
	"lastbite-client/internal/domain/cart"
	"lastbite-client/internal/domain/catalog"
)

// PricedLine is a cart line joined with its loaded listing.
type PricedLine struct {
	Listing      catalog.Listing
	Count        int
	UnitPrice    float64
	LineTotal    float64
	ExceedsStock bool
}

// Savings is the gap between the listing's original price and the unit
// price actually charged, over the whole line.
func (l PricedLine) Savings() float64 {
	saved := (l.Listing.OriginalPrice - l.UnitPrice) * float64(l.Count)
	if saved < 0 {
		return 0
	}
	return saved
}

// Quote is the full pricing derivation for the current cart. Pure data,
// recomputed from scratch on every read.
type Quote struct {
	Lines         []PricedLine
	Subtotal      float64
	DeliveryFee   float64
	FlashDiscount float64
	Total         float64
}

// Input is everything the derivation reads. Restaurant may be nil while
// the active restaurant is still being resolved.
type Input struct {
	Lines          cart.Lines
	Listings       []catalog.Listing
	Restaurant     *catalog.Restaurant
	Pickup         bool
	FlashDealOptIn bool
}

type flashTier struct {
	threshold float64
	discount  float64
}

// Highest matched tier wins; tiers are not cumulative.
var flashTiers = []flashTier{
	{threshold: 400, discount: 150},
	{threshold: 250, discount: 100},
	{threshold: 200, discount: 75},
	{threshold: 150, discount: 50},
}

// FlashDiscount maps subtotal+fee onto the flash-deal step function.
func FlashDiscount(base float64) float64 {
	for _, tier := range flashTiers {
		if base >= tier.threshold {
			return tier.discount
		}
	}
	return 0
}

// ComputeQuote inner-joins cart lines against loaded listings and derives
// subtotal, delivery fee, flash discount and final total. Lines whose
// listing has not been loaded yet contribute nothing.
func ComputeQuote(in Input) Quote {
	byID := make(map[int64]catalog.Listing, len(in.Listings))
	for _, l := range in.Listings {
		byID[l.ID] = l
	}

	q := Quote{}
	for _, line := range in.Lines {
		listing, ok := byID[line.ListingID]
		if !ok {
			continue
		}
		unit := listing.DeliveryPrice
		if in.Pickup {
			unit = listing.PickupPrice
		}
		if unit < 0 {
			unit = 0
		}
		priced := PricedLine{
			Listing:      listing,
			Count:        line.Count,
			UnitPrice:    unit,
			LineTotal:    unit * float64(line.Count),
			ExceedsStock: line.Count > listing.Stock,
		}
		q.Lines = append(q.Lines, priced)
		q.Subtotal += priced.LineTotal
	}

	if !in.Pickup && in.Restaurant != nil && in.Restaurant.DeliveryFee > 0 {
		q.DeliveryFee = in.Restaurant.DeliveryFee
	}

	if in.FlashDealOptIn && in.Restaurant != nil && in.Restaurant.FlashDealsAvailable {
		q.FlashDiscount = FlashDiscount(q.Subtotal + q.DeliveryFee)
	}

	q.Total = q.Subtotal + q.DeliveryFee - q.FlashDiscount
	if q.Total < 0 {
		q.Total = 0
	}
	return q
}
