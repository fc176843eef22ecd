// Package store holds the client-side state containers: the reconciliation
// store owning the cart aggregate and the session store owning restaurant
// selection. All mutation entry points go through the commands layer.
package store

import (
	"sync"

	"lastbite-client/internal/domain/cart"
	"lastbite-client/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrMutationInFlight = errs.New("mutation already in flight for this line")
	ErrResetInFlight    = errs.New("cart reset in flight")
	ErrNoPendingState   = errs.New("no pending mutation to resolve")
)

type pendingKind string

const (
	pendingAdd    pendingKind = "add"
	pendingUpdate pendingKind = "update"
	pendingRemove pendingKind = "remove"
)

// linePending snapshots the pre-mutation state of a single line while the
// gateway call is in flight. Consumed exactly once on resolution.
type linePending struct {
	kind      pendingKind
	existed   bool      // add: the line was already in the cart
	prevCount int       // add/update: count before the optimistic write
	line      cart.Line // remove: the deleted line
}

// CartStore owns the canonical local cart. Mutations are applied
// optimistically on Begin*, then either committed or rolled back when the
// gateway call resolves. Pending bookkeeping is keyed by listing ID so
// mutations on distinct lines may be in flight concurrently; a second
// mutation on the same line is rejected at dispatch. Reset snapshots the
// whole cart under a one-time token.
//
// The mutex gives multi-goroutine callers the single-writer semantics the
// engine assumes: one transition completes before the next begins.
type CartStore struct {
	mu      sync.Mutex
	lines   cart.Lines
	pending map[int64]*linePending
	resets  map[uuid.UUID]cart.Lines
}

func NewCartStore() *CartStore {
	return &CartStore{
		pending: make(map[int64]*linePending),
		resets:  make(map[uuid.UUID]cart.Lines),
	}
}

// Lines returns a deep copy of the current cart; callers never observe
// later mutations through it.
func (s *CartStore) Lines() cart.Lines {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

// Replace overwrites the cart with server truth after an authoritative
// refetch. Pending bookkeeping for other in-flight lines is left alone.
func (s *CartStore) Replace(lines cart.Lines) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = cloneLines(lines)
}

// BeginAdd applies the optimistic add: increment an existing line in place
// or append an unconfirmed line with count 1.
func (s *CartStore) BeginAdd(listingID, restaurantID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLineFree(listingID); err != nil {
		return err
	}

	p := &linePending{kind: pendingAdd}
	if i, ok := s.lines.IndexOf(listingID); ok {
		p.existed = true
		p.prevCount = s.lines[i].Count
		s.lines[i].Count++
	} else {
		s.lines = append(s.lines, cart.Line{
			ListingID:    listingID,
			RestaurantID: restaurantID,
			Count:        1,
			Unconfirmed:  true,
		})
	}
	s.pending[listingID] = p
	return nil
}

func (s *CartStore) CommitAdd(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.takePending(listingID, pendingAdd); err != nil {
		return err
	}
	if i, ok := s.lines.IndexOf(listingID); ok {
		s.lines[i].Unconfirmed = false
	}
	return nil
}

func (s *CartStore) RollbackAdd(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.takePending(listingID, pendingAdd)
	if err != nil {
		return err
	}
	i, ok := s.lines.IndexOf(listingID)
	if !ok {
		return nil
	}
	if p.existed {
		s.lines[i].Count = p.prevCount
	} else {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
	return nil
}

// BeginUpdate snapshots the current count and overwrites it with the
// requested one. Counts below 1 are the caller's responsibility to route
// to remove instead.
func (s *CartStore) BeginUpdate(listingID int64, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count < 1 {
		return cart.ErrInvalidCount
	}
	if err := s.ensureLineFree(listingID); err != nil {
		return err
	}
	i, ok := s.lines.IndexOf(listingID)
	if !ok {
		return cart.ErrLineNotFound
	}

	s.pending[listingID] = &linePending{kind: pendingUpdate, prevCount: s.lines[i].Count}
	s.lines[i].Count = count
	return nil
}

func (s *CartStore) CommitUpdate(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.takePending(listingID, pendingUpdate)
	return err
}

func (s *CartStore) RollbackUpdate(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.takePending(listingID, pendingUpdate)
	if err != nil {
		return err
	}
	if i, ok := s.lines.IndexOf(listingID); ok {
		s.lines[i].Count = p.prevCount
	}
	return nil
}

// BeginRemove snapshots the whole line and deletes it from the cart.
func (s *CartStore) BeginRemove(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLineFree(listingID); err != nil {
		return err
	}
	i, ok := s.lines.IndexOf(listingID)
	if !ok {
		return cart.ErrLineNotFound
	}

	var snapshot cart.Line
	if err := copier.CopyWithOption(&snapshot, &s.lines[i], copier.Option{DeepCopy: true}); err != nil {
		return errs.Wrap(err, "snapshot cart line")
	}
	s.pending[listingID] = &linePending{kind: pendingRemove, line: snapshot}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return nil
}

func (s *CartStore) CommitRemove(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.takePending(listingID, pendingRemove)
	return err
}

// RollbackRemove re-inserts the snapshotted line. Position in the cart is
// not preserved.
func (s *CartStore) RollbackRemove(listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.takePending(listingID, pendingRemove)
	if err != nil {
		return err
	}
	if _, ok := s.lines.IndexOf(listingID); !ok {
		s.lines = append(s.lines, p.line)
	}
	return nil
}

// BeginReset snapshots the entire cart under a one-time token and clears
// it. Rejected while any per-line mutation is outstanding.
func (s *CartStore) BeginReset() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) > 0 {
		return uuid.Nil, ErrMutationInFlight
	}
	if len(s.resets) > 0 {
		return uuid.Nil, ErrResetInFlight
	}

	snapshot := cloneLines(s.lines)
	tok := uuid.New()
	s.resets[tok] = snapshot
	s.lines = nil
	return tok, nil
}

func (s *CartStore) CommitReset(tok uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resets[tok]; !ok {
		return ErrNoPendingState
	}
	delete(s.resets, tok)
	return nil
}

func (s *CartStore) RollbackReset(tok uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.resets[tok]
	if !ok {
		return ErrNoPendingState
	}
	delete(s.resets, tok)
	s.lines = snapshot
	return nil
}

func (s *CartStore) ensureLineFree(listingID int64) error {
	if len(s.resets) > 0 {
		return ErrResetInFlight
	}
	if _, ok := s.pending[listingID]; ok {
		return ErrMutationInFlight
	}
	return nil
}

func (s *CartStore) takePending(listingID int64, kind pendingKind) (*linePending, error) {
	p, ok := s.pending[listingID]
	if !ok || p.kind != kind {
		return nil, ErrNoPendingState
	}
	delete(s.pending, listingID)
	return p, nil
}

func cloneLines(lines cart.Lines) cart.Lines {
	if len(lines) == 0 {
		return nil
	}
	out := make(cart.Lines, 0, len(lines))
	if err := copier.CopyWithOption(&out, &lines, copier.Option{DeepCopy: true}); err != nil {
		// cart.Lines is a flat value slice; copier cannot fail on it, but
		// fall back to an element copy rather than lose the cart.
		out = append(cart.Lines{}, lines...)
	}
	return out
}
