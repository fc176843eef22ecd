package store

import (
	"sync"

	"lastbite-client/internal/domain/catalog"
	"lastbite-client/internal/pkg/config"
)

// SessionStore owns the per-session selection state around the cart: the
// loaded proximity list, the active restaurant with its listings page, the
// fulfillment mode and the flash-deal opt-in. Read-mostly; pages render
// from its snapshots while the commands layer writes it.
type SessionStore struct {
	mu             sync.RWMutex
	nearby         []catalog.Restaurant
	active         *catalog.Restaurant
	listings       []catalog.Listing
	pickup         bool
	flashDealOptIn bool
}

func NewSessionStore(cfg config.SessionConfig) *SessionStore {
	return &SessionStore{
		pickup:         cfg.Pickup,
		flashDealOptIn: cfg.FlashDealOptIn,
	}
}

func (s *SessionStore) SetNearby(restaurants []catalog.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nearby = append([]catalog.Restaurant(nil), restaurants...)
}

func (s *SessionStore) Nearby(id int64) (catalog.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.nearby {
		if r.ID == id {
			return r, true
		}
	}
	return catalog.Restaurant{}, false
}

// SetActiveRestaurant replaces the active restaurant and auto-corrects the
// fulfillment mode when the new restaurant supports only one. Listings of
// a previously active restaurant are dropped; they belong to the old menu.
func (s *SessionStore) SetActiveRestaurant(r catalog.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil || s.active.ID != r.ID {
		s.listings = nil
	}
	s.active = &r
	s.pickup = catalog.NormalizeFulfillment(s.pickup, r)
}

func (s *SessionStore) ClearActiveRestaurant() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.listings = nil
}

func (s *SessionStore) ActiveRestaurant() (catalog.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return catalog.Restaurant{}, false
	}
	return *s.active, true
}

func (s *SessionStore) SetListings(listings []catalog.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append([]catalog.Listing(nil), listings...)
}

func (s *SessionStore) Listings() []catalog.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Listing(nil), s.listings...)
}

func (s *SessionStore) Pickup() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pickup
}

// SetPickup records an explicit user toggle. No normalization here: the
// page offers only the modes the restaurant supports.
func (s *SessionStore) SetPickup(pickup bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pickup = pickup
}

func (s *SessionStore) FlashDealOptIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flashDealOptIn
}

func (s *SessionStore) SetFlashDealOptIn(optIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashDealOptIn = optIn
}
