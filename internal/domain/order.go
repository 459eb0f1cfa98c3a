package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// fulfilment rank; cancelled sits outside the forward chain.
var statusRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderConfirmed:  1,
	OrderProcessing: 2,
	OrderShipped:    3,
	OrderDelivered:  4,
}

// ParseOrderStatus validates a raw status string against the enum.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if _, ok := statusRank[s]; ok || s == OrderCancelled {
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q: %w", raw, ErrInvalid)
}

// CanTransitionTo reports whether moving from s to next is legal: forward
// through the fulfilment chain, or a jump to cancelled while cancellable.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderCancelled {
		return s.Cancellable()
	}
	if s == OrderCancelled {
		return false
	}
	return statusRank[next] >= statusRank[s]
}

// Cancellable reports whether an order in this status may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s != OrderShipped && s != OrderDelivered
}

// Order is an immutable-after-creation snapshot of a checkout; only its
// status lifecycle fields change afterwards.
type Order struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Items              []OrderItem     `json:"items"`
	ShippingAddress    Address         `json:"shippingAddress"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Tax                decimal.Decimal `json:"tax"`
	Shipping           decimal.Decimal `json:"shipping"`
	Total              decimal.Decimal `json:"total"`
	Status             OrderStatus     `json:"status"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	EstimatedDelivery  *time.Time      `json:"estimatedDelivery,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// OrderItem carries the product name and price captured at order time, so
// later catalog edits never alter historical orders.
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"addedAt"`
}

type Address struct {
	FullName   string `json:"fullName,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Clone returns a deep copy so stored orders are never aliased by callers.
func (o *Order) Clone() *Order {
	out := *o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	if o.EstimatedDelivery != nil {
		t := *o.EstimatedDelivery
		out.EstimatedDelivery = &t
	}
	return &out
}
