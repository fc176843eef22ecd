package cart

import (
	"errors"
)

var (
	ErrLineNotFound = errors.New("cart line not found")
	ErrInvalidCount = errors.New("cart line count must be at least 1")
)

// Line is one distinct purchasable item in the cart. A count of zero is
// never represented; removing the line is the only way to reach zero.
type Line struct {
	ListingID    int64 `json:"listing_id"`
	RestaurantID int64 `json:"restaurant_id"`
	Count        int   `json:"count"`

	// Unconfirmed marks a line appended optimistically before the server
	// acknowledged the add. Cleared on commit, removed on rollback.
	Unconfirmed bool `json:"-"`
}

func NewLine(listingID, restaurantID int64, count int) (Line, error) {
	if count < 1 {
		return Line{}, ErrInvalidCount
	}
	return Line{ListingID: listingID, RestaurantID: restaurantID, Count: count}, nil
}

// Lines is the ordered cart content. At most one line per listing ID.
type Lines []Line

func (ls Lines) IndexOf(listingID int64) (int, bool) {
	for i, l := range ls {
		if l.ListingID == listingID {
			return i, true
		}
	}
	return 0, false
}

func (ls Lines) Get(listingID int64) (Line, bool) {
	if i, ok := ls.IndexOf(listingID); ok {
		return ls[i], true
	}
	return Line{}, false
}

func (ls Lines) IsEmpty() bool {
	return len(ls) == 0
}

func (ls Lines) TotalCount() int {
	total := 0
	for _, l := range ls {
		total += l.Count
	}
	return total
}

// RestaurantID reports the restaurant the cart belongs to, taken from the
// first line. A non-empty cart holds lines of a single restaurant; that
// constraint is enforced by the checkout flow, not here.
func (ls Lines) RestaurantID() (int64, bool) {
	if len(ls) == 0 {
		return 0, false
	}
	return ls[0].RestaurantID, true
}
