package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// initialDeliveryEstimate is set when the order is created.
	initialDeliveryEstimate = 7 * 24 * time.Hour
	// shippedDeliveryEstimate replaces it once the order ships.
	shippedDeliveryEstimate = 3 * 24 * time.Hour

	defaultCancelReason = "Cancelled by user"
)

type Service struct {
	orders   orderRepo
	carts    cartRepo
	products productRepo
	now      func() time.Time
	newID    func() string
}

type orderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type cartRepo interface {
	Delete(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(orders orderRepo, carts cartRepo, products productRepo) *Service {
	return &Service{
		orders:   orders,
		carts:    carts,
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

type CreateInput struct {
	UserID          string          `json:"userId"`
	Items           []ItemInput     `json:"items"`
	ShippingAddress *domain.Address `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Create builds an order from a cart snapshot: item names and prices are
// captured now so later catalog edits never alter this order, and totals are
// computed once at creation rather than re-derived later. The user's cart is
// cleared afterwards.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return nil, fmt.Errorf("userId required: %w", domain.ErrInvalid)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("items required: %w", domain.ErrInvalid)
	}
	if in.ShippingAddress == nil {
		return nil, fmt.Errorf("shippingAddress required: %w", domain.ErrInvalid)
	}

	now := s.now()
	items := make([]domain.OrderItem, 0, len(in.Items))
	lines := make([]domain.CartItem, 0, len(in.Items))
	resolved := make([]domain.Product, 0, len(in.Items))

	for _, item := range in.Items {
		productID := strings.TrimSpace(item.ProductID)
		if productID == "" {
			return nil, fmt.Errorf("item productId required: %w", domain.ErrInvalid)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("item quantity must be at least 1: %w", domain.ErrInvalid)
		}

		snapshot := domain.OrderItem{
			ID:        s.newID(),
			ProductID: productID,
			Quantity:  item.Quantity,
			AddedAt:   now,
		}
		// An unresolvable product is recorded at zero price with the raw id as
		// its name, so the catalog gap stays visible in the stored order.
		if product, err := s.products.GetByID(ctx, productID); err == nil {
			snapshot.Name = product.Name
			snapshot.Price = product.Price
			resolved = append(resolved, *product)
		} else {
			snapshot.Name = productID
			snapshot.Price = decimal.Zero
		}

		items = append(items, snapshot)
		lines = append(lines, domain.CartItem{ID: snapshot.ID, ProductID: productID, Quantity: item.Quantity})
	}

	quote := pricing.Compute(lines, pricing.LookupFromProducts(resolved))
	estimated := now.Add(initialDeliveryEstimate)

	order := &domain.Order{
		ID:                s.newID(),
		UserID:            userID,
		Items:             items,
		ShippingAddress:   *in.ShippingAddress,
		PaymentMethod:     in.PaymentMethod,
		Subtotal:          quote.Subtotal,
		Tax:               quote.Tax,
		Shipping:          quote.Shipping,
		Total:             quote.Total,
		Status:            domain.OrderPending,
		EstimatedDelivery: &estimated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Best effort: a failed cart clear must not undo the placed order.
	_ = s.carts.Delete(ctx, userID)

	return order, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, orderID)
}

// ListByUser returns the user's orders newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// UpdateStatus moves an order forward through its lifecycle. Unknown statuses
// are a validation error; backward moves and revivals of a cancelled order are
// conflicts. Transitioning to shipped recomputes the delivery estimate.
func (s *Service) UpdateStatus(ctx context.Context, orderID, rawStatus string) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("cannot change status from %s to %s: %w", order.Status, status, domain.ErrConflict)
	}

	now := s.now()
	if status == domain.OrderShipped && order.Status != domain.OrderShipped {
		estimated := now.Add(shippedDeliveryEstimate)
		order.EstimatedDelivery = &estimated
	}
	order.Status = status
	order.UpdatedAt = now

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel marks the order cancelled unless it has already shipped or been
// delivered. An empty reason falls back to a default.
func (s *Service) Cancel(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, fmt.Errorf("order already %s: %w", order.Status, domain.ErrConflict)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultCancelReason
	}

	order.Status = domain.OrderCancelled
	order.CancellationReason = reason
	order.UpdatedAt = s.now()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
