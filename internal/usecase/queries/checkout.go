package queries

import (
	"log/slog"
	"time"

	"lastbite-client/internal/domain/catalog"
	"lastbite-client/internal/domain/pricing"
	"lastbite-client/internal/domain/schedule"
	"lastbite-client/internal/pkg/clock"
	"lastbite-client/internal/store"
)

// CheckoutView is the derived read model pages render the checkout from.
// Recomputed from store state on every call; nothing here is cached.
type CheckoutView struct {
	Quote       pricing.Quote
	Pickup      bool
	Restaurant  *catalog.Restaurant
	Status      schedule.Status
	StatusKnown bool
	NextOpenDay *time.Weekday
	CanSubmit   bool
}

type CheckoutQueries interface {
	// Quote derives pricing from the current cart, loaded listings and
	// fulfillment mode.
	Quote() pricing.Quote
	// Checkout combines the quote with the operating-window gate.
	Checkout() CheckoutView
}

type checkoutQueriesImpl struct {
	carts   *store.CartStore
	session *store.SessionStore
	clock   clock.Clock
}

func NewCheckoutQueries(carts *store.CartStore, session *store.SessionStore, clk clock.Clock) CheckoutQueries {
	return &checkoutQueriesImpl{carts: carts, session: session, clock: clk}
}

func (q *checkoutQueriesImpl) Quote() pricing.Quote {
	in := pricing.Input{
		Lines:          q.carts.Lines(),
		Listings:       q.session.Listings(),
		Pickup:         q.session.Pickup(),
		FlashDealOptIn: q.session.FlashDealOptIn(),
	}
	if restaurant, ok := q.session.ActiveRestaurant(); ok {
		in.Restaurant = &restaurant
	}
	return pricing.ComputeQuote(in)
}

func (q *checkoutQueriesImpl) Checkout() CheckoutView {
	view := CheckoutView{
		Quote:  q.Quote(),
		Pickup: q.session.Pickup(),
	}

	restaurant, ok := q.session.ActiveRestaurant()
	if !ok {
		return view
	}
	view.Restaurant = &restaurant

	window, err := restaurant.Window()
	if err != nil {
		slog.Warn("restaurant has unusable working hours",
			slog.Int64("restaurant_id", restaurant.ID),
			slog.String("error", err.Error()),
		)
		return view
	}

	now := q.clock.Now()
	view.Status = window.Classify(now)
	view.StatusKnown = true

	if view.Status == schedule.StatusClosedToday || view.Status == schedule.StatusClosedForToday {
		if day, found := window.NextOpenDay(now); found {
			view.NextOpenDay = &day
		}
	}

	view.CanSubmit = window.AcceptsOrders(now) && !q.carts.Lines().IsEmpty()
	return view
}
