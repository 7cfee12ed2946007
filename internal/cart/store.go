package cart

import (
	"sync"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store owns the carts of active shopping sessions. Carts live in
// memory for the duration of the process; all mutations go through the
// store's lock.
type Store struct {
	mu     sync.RWMutex
	carts  map[uuid.UUID]*Cart
	logger zerolog.Logger
}

// NewStore creates an empty session store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		carts:  make(map[uuid.UUID]*Cart),
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

// Create starts a new shopping session and returns its empty cart.
func (s *Store) Create() Snapshot {
	c := New()

	s.mu.Lock()
	s.carts[c.ID] = c
	s.mu.Unlock()

	s.logger.Debug().Str("cart_id", c.ID.String()).Msg("cart created")
	return c.Snapshot()
}

// Get returns a snapshot of the cart for a session.
func (s *Store) Get(id uuid.UUID) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	if !ok {
		return Snapshot{}, model.ErrCartNotFound
	}
	return c.Snapshot(), nil
}

// Mutate applies fn to the cart under the store's lock and returns the
// resulting snapshot.
func (s *Store) Mutate(id uuid.UUID, fn func(*Cart) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return Snapshot{}, model.ErrCartNotFound
	}
	if err := fn(c); err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

// Delete ends a shopping session, discarding its cart.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()

	s.logger.Debug().Str("cart_id", id.String()).Msg("cart discarded")
}

// Size returns the number of active sessions.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
