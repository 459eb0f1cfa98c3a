package cart

import (
	"context"
	"sync"

	"storefront-api/internal/domain"
)

// memoryRepo keeps carts in a map keyed by userId. Records are cloned on the
// way in and out, so concurrent writers for the same user are last-write-wins
// on the whole record and readers never observe a torn cart.
type memoryRepo struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewMemory() Repository {
	return &memoryRepo{carts: make(map[string]*domain.Cart)}
}

func (r *memoryRepo) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cart.Clone(), nil
}

func (r *memoryRepo) Put(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.UserID] = cart.Clone()
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
