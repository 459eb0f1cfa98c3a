package product

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront-api/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewMemory() Repository {
	return &memoryRepo{products: make(map[string]domain.Product)}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	// Newest first, id as tiebreaker for a stable listing.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneProduct(p)
	return &out, nil
}

func (r *memoryRepo) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.products[product.ID]; ok {
		product.CreatedAt = existing.CreatedAt
	} else if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	r.products[product.ID] = cloneProduct(product)
	out := cloneProduct(product)
	return &out, nil
}

func cloneProduct(p domain.Product) domain.Product {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}
