package store

import (
	"context"
	"sync"
	"time"
)

type registryEntry struct {
	cart     *CartStore
	lastSeen time.Time
}

// CartRegistry owns the carts of all live shopper sessions. A cart lives
// until it is dropped or stays idle for longer than the session TTL.
type CartRegistry struct {
	mu    sync.Mutex
	carts map[string]*registryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewCartRegistry(ttl time.Duration) *CartRegistry {
	return &CartRegistry{
		carts: make(map[string]*registryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Open returns the cart of sessionID, creating an empty one if needed.
func (r *CartRegistry) Open(sessionID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.carts[sessionID]
	if !ok {
		e = &registryEntry{cart: NewCartStore()}
		r.carts[sessionID] = e
	}
	e.lastSeen = r.now()
	return e.cart
}

func (r *CartRegistry) Lookup(sessionID string) (*CartStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.carts[sessionID]
	if !ok {
		return nil, false
	}
	return e.cart, true
}

func (r *CartRegistry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

func (r *CartRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// Sweep evicts idle carts and reports how many were removed.
func (r *CartRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.carts {
		if e.lastSeen.Before(cutoff) {
			delete(r.carts, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled. onSweep, when set, is
// called with the number of evicted carts after each sweep.
func (r *CartRegistry) Run(ctx context.Context, interval time.Duration, onSweep func(int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := r.Sweep()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
