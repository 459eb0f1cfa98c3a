package order

import (
	"context"
	"sort"
	"sync"

	"storefront-api/internal/domain"
)

// memoryRepo keeps orders in a map keyed by order id plus a userId index, so
// lookups by id never scan across users.
type memoryRepo struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	byUser map[string][]string
}

func NewMemory() Repository {
	return &memoryRepo{
		orders: make(map[string]*domain.Order),
		byUser: make(map[string][]string),
	}
}

func (r *memoryRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order.Clone()
	r.byUser[order.UserID] = append(r.byUser[order.UserID], order.ID)
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		if order, ok := r.orders[id]; ok {
			out = append(out, *order.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepo) Update(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.orders[order.ID] = order.Clone()
	return nil
}
