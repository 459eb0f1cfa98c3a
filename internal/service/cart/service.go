package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	carts    cartRepo
	products productRepo
	now      func() time.Time
	newID    func() string
}

type cartRepo interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Put(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(carts cartRepo, products productRepo) *Service {
	return &Service{
		carts:    carts,
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

type AddItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Summary is the priced view of one user's cart. Totals are re-derived on
// every call rather than cached, since product prices may change between
// reads.
type Summary struct {
	UserID    string          `json:"userId"`
	Items     []ItemView      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// ItemView joins a cart line with its product when the product is resolvable;
// unresolved lines keep a nil product and contribute zero to the totals.
type ItemView struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"addedAt"`
	Product   *domain.Product `json:"product,omitempty"`
}

// Get returns the user's cart summary. A user without a cart gets an empty
// summary, never an error.
func (s *Service) Get(ctx context.Context, userID string) (*Summary, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

// AddItem merges the product into an existing line or appends a new one.
func (s *Service) AddItem(ctx context.Context, userID string, in AddItemInput) (*Summary, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, fmt.Errorf("productId required: %w", domain.ErrInvalid)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrInvalid)
	}

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindByProduct(productID); i >= 0 {
		cart.Items[i].Quantity += in.Quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:        s.newID(),
			ProductID: productID,
			Quantity:  in.Quantity,
			AddedAt:   s.now(),
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

// UpdateItem sets the quantity on an existing line.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*Summary, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrInvalid)
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
		}
		return nil, err
	}

	i := cart.FindItem(itemID)
	if i < 0 {
		return nil, fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
	}
	cart.Items[i].Quantity = quantity

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

// RemoveItem drops a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) (*Summary, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
		}
		return nil, err
	}

	i := cart.FindItem(itemID)
	if i < 0 {
		return nil, fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

// Clear removes the user's cart entirely. Clearing a missing cart is a no-op.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.carts.Delete(ctx, userID)
}

func (s *Service) load(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		now := s.now()
		return &domain.Cart{UserID: userID, CreatedAt: now, UpdatedAt: now}, nil
	}
	return nil, err
}

func (s *Service) save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = s.now()
	return s.carts.Put(ctx, cart)
}

func (s *Service) summarize(ctx context.Context, cart *domain.Cart) (*Summary, error) {
	items := make([]ItemView, 0, len(cart.Items))
	resolved := make([]domain.Product, 0, len(cart.Items))
	for _, item := range cart.Items {
		view := ItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
		}
		// An unresolvable product leaves the line priced at zero instead of
		// failing the whole summary.
		if product, err := s.products.GetByID(ctx, item.ProductID); err == nil {
			view.Product = product
			resolved = append(resolved, *product)
		}
		items = append(items, view)
	}

	quote := pricing.Compute(cart.Items, pricing.LookupFromProducts(resolved))

	return &Summary{
		UserID:    cart.UserID,
		Items:     items,
		Subtotal:  quote.Subtotal,
		Tax:       quote.Tax,
		Shipping:  quote.Shipping,
		Total:     quote.Total,
		ItemCount: cart.ItemCount(),
	}, nil
}
