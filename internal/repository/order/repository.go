package order

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository stores orders indexed directly by order id; the per-user listing
// never scans other users' orders.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}
