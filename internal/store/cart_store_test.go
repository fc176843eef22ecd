//go:build unit

package store_test

import (
	"testing"

	"lastbite-client/internal/domain/cart"
	"lastbite-client/internal/store"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, lines ...cart.Line) *store.CartStore {
	t.Helper()
	s := store.NewCartStore()
	s.Replace(lines)
	return s
}

func sameCart(t *testing.T, want, got cart.Lines) {
	t.Helper()
	sort := cmpopts.SortSlices(func(a, b cart.Line) bool { return a.ListingID < b.ListingID })
	if diff := cmp.Diff(want, got, sort, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTransitions(t *testing.T) {
	t.Run("add of absent line appends unconfirmed line", func(t *testing.T) {
		s := seeded(t)
		require.NoError(t, s.BeginAdd(7, 3))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(7), lines[0].ListingID)
		assert.Equal(t, int64(3), lines[0].RestaurantID)
		assert.Equal(t, 1, lines[0].Count)
		assert.True(t, lines[0].Unconfirmed)
	})

	t.Run("add of present line increments in place", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginAdd(7, 3))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Count)
		assert.False(t, lines[0].Unconfirmed)
	})

	t.Run("commit confirms the appended line", func(t *testing.T) {
		s := seeded(t)
		require.NoError(t, s.BeginAdd(7, 3))
		require.NoError(t, s.CommitAdd(7))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.False(t, lines[0].Unconfirmed)
	})

	t.Run("rollback of fresh add is a no-op overall", func(t *testing.T) {
		before := cart.Lines{{ListingID: 9, RestaurantID: 3, Count: 1}}
		s := seeded(t, before...)
		require.NoError(t, s.BeginAdd(7, 3))
		require.NoError(t, s.RollbackAdd(7))

		sameCart(t, before, s.Lines())
	})

	t.Run("rollback of increment restores exact prior count", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginAdd(7, 3))
		require.NoError(t, s.RollbackAdd(7))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Count)
	})
}

func TestUpdateTransitions(t *testing.T) {
	t.Run("pending overwrites count immediately", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginUpdate(7, 5))
		assert.Equal(t, 5, s.Lines()[0].Count)
	})

	t.Run("rollback restores exactly the prior count", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginUpdate(7, 5))
		require.NoError(t, s.RollbackUpdate(7))
		assert.Equal(t, 2, s.Lines()[0].Count)
	})

	t.Run("commit drops the snapshot and keeps the new count", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginUpdate(7, 5))
		require.NoError(t, s.CommitUpdate(7))
		assert.Equal(t, 5, s.Lines()[0].Count)
	})

	t.Run("missing line is rejected", func(t *testing.T) {
		s := seeded(t)
		require.ErrorIs(t, s.BeginUpdate(7, 5), cart.ErrLineNotFound)
	})

	t.Run("zero count is rejected at the store boundary", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.ErrorIs(t, s.BeginUpdate(7, 0), cart.ErrInvalidCount)
	})
}

func TestRemoveTransitions(t *testing.T) {
	t.Run("pending deletes the line", func(t *testing.T) {
		s := seeded(t,
			cart.Line{ListingID: 7, RestaurantID: 3, Count: 2},
			cart.Line{ListingID: 9, RestaurantID: 3, Count: 1},
		)
		require.NoError(t, s.BeginRemove(7))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(9), lines[0].ListingID)
	})

	t.Run("rollback reinserts the exact removed line", func(t *testing.T) {
		before := cart.Lines{
			{ListingID: 7, RestaurantID: 3, Count: 2},
			{ListingID: 9, RestaurantID: 3, Count: 1},
		}
		s := seeded(t, before...)
		require.NoError(t, s.BeginRemove(7))
		require.NoError(t, s.RollbackRemove(7))

		sameCart(t, before, s.Lines())
	})

	t.Run("commit discards the snapshot", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginRemove(7))
		require.NoError(t, s.CommitRemove(7))
		assert.Empty(t, s.Lines())
	})
}

func TestResetTransitions(t *testing.T) {
	before := cart.Lines{
		{ListingID: 7, RestaurantID: 3, Count: 2},
		{ListingID: 9, RestaurantID: 3, Count: 1},
	}

	t.Run("pending clears the cart", func(t *testing.T) {
		s := seeded(t, before...)
		_, err := s.BeginReset()
		require.NoError(t, err)
		assert.Empty(t, s.Lines())
	})

	t.Run("rollback restores the exact pre-reset cart", func(t *testing.T) {
		s := seeded(t, before...)
		tok, err := s.BeginReset()
		require.NoError(t, err)
		require.NoError(t, s.RollbackReset(tok))

		sameCart(t, before, s.Lines())
	})

	t.Run("commit leaves the cart empty", func(t *testing.T) {
		s := seeded(t, before...)
		tok, err := s.BeginReset()
		require.NoError(t, err)
		require.NoError(t, s.CommitReset(tok))
		assert.Empty(t, s.Lines())
	})

	t.Run("token is one-time", func(t *testing.T) {
		s := seeded(t, before...)
		tok, err := s.BeginReset()
		require.NoError(t, err)
		require.NoError(t, s.CommitReset(tok))
		require.ErrorIs(t, s.RollbackReset(tok), store.ErrNoPendingState)
	})
}

func TestPendingKeying(t *testing.T) {
	t.Run("mutations on distinct lines may overlap", func(t *testing.T) {
		s := seeded(t,
			cart.Line{ListingID: 7, RestaurantID: 3, Count: 2},
			cart.Line{ListingID: 9, RestaurantID: 3, Count: 1},
		)
		require.NoError(t, s.BeginUpdate(7, 5))
		require.NoError(t, s.BeginRemove(9))

		require.NoError(t, s.RollbackUpdate(7))
		require.NoError(t, s.RollbackRemove(9))

		sameCart(t, cart.Lines{
			{ListingID: 7, RestaurantID: 3, Count: 2},
			{ListingID: 9, RestaurantID: 3, Count: 1},
		}, s.Lines())
	})

	t.Run("second mutation on the same line is rejected", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginUpdate(7, 5))
		require.ErrorIs(t, s.BeginAdd(7, 3), store.ErrMutationInFlight)
		require.ErrorIs(t, s.BeginRemove(7), store.ErrMutationInFlight)
	})

	t.Run("reset excludes line mutations and vice versa", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		_, err := s.BeginReset()
		require.NoError(t, err)
		require.ErrorIs(t, s.BeginAdd(9, 3), store.ErrResetInFlight)

		s2 := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s2.BeginUpdate(7, 5))
		_, err = s2.BeginReset()
		require.ErrorIs(t, err, store.ErrMutationInFlight)
	})

	t.Run("resolving the wrong kind is rejected", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		require.NoError(t, s.BeginUpdate(7, 5))
		require.ErrorIs(t, s.RollbackAdd(7), store.ErrNoPendingState)
		require.NoError(t, s.RollbackUpdate(7))
	})
}

func TestReplaceAndViews(t *testing.T) {
	t.Run("replace overwrites with server truth", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		s.Replace(cart.Lines{{ListingID: 11, RestaurantID: 4, Count: 1}})

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(11), lines[0].ListingID)
	})

	t.Run("returned lines are a detached copy", func(t *testing.T) {
		s := seeded(t, cart.Line{ListingID: 7, RestaurantID: 3, Count: 2})
		view := s.Lines()
		view[0].Count = 99

		assert.Equal(t, 2, s.Lines()[0].Count)
	})
}
