// Package pricing derives checkout totals from cart lines and a product
// price lookup. It is deliberately pure: callers re-derive a quote on every
// request instead of caching, since catalog prices may change between reads.
package pricing

import (
	"storefront-api/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// TaxRate is applied to the subtotal and rounded to two decimals.
	TaxRate = decimal.NewFromFloat(0.08)
	// FreeShippingThreshold is exclusive: a subtotal of exactly 50.00 still
	// pays the flat fee.
	FreeShippingThreshold = decimal.NewFromFloat(50.00)
	// ShippingFee is the flat fee below the free-shipping threshold.
	ShippingFee = decimal.NewFromFloat(5.99)
)

// Lookup resolves a productId to its current price. A false return means the
// product is unresolvable and its lines contribute zero to the subtotal.
type Lookup func(productID string) (decimal.Decimal, bool)

// Quote is the priced breakdown of a set of lines.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Compute prices the given cart lines. Lines whose product cannot be resolved
// are skipped rather than failing the whole quote, so a transient catalog gap
// never blocks checkout.
func Compute(items []domain.CartItem, lookup Lookup) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		price, ok := lookup(item.ProductID)
		if !ok {
			continue
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	shipping := ShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// LookupFromProducts adapts a product slice into a Lookup.
func LookupFromProducts(products []domain.Product) Lookup {
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	return func(productID string) (decimal.Decimal, bool) {
		price, ok := prices[productID]
		return price, ok
	}
}
