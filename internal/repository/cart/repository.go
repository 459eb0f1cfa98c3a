package cart

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository is a get/put/delete store keyed by userId. Get returns
// domain.ErrNotFound when the user has no cart; Delete of a missing cart is
// not an error.
type Repository interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Put(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}
