package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	cartsvc "storefront-api/internal/service/cart"
)

func decodeSummary(t *testing.T, env envelope) cartsvc.Summary {
	t.Helper()
	var sum cartsvc.Summary
	if err := json.Unmarshal(env.Data, &sum); err != nil {
		t.Fatalf("decode cart summary: %v", err)
	}
	return sum
}

func TestGetCartForUnknownUser(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/cart/u1", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %s", rec.Code, env.Error)
	}
	sum := decodeSummary(t, env)
	if sum.ItemCount != 0 || len(sum.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", sum)
	}
}

func TestAddCartItemValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"quantity":1}`)
	if rec.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400 for missing productId, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"productId":"1","quantity":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for quantity 0, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestAddCartItemMergesAndPrices(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"productId":"1","quantity":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first add: %d", rec.Code)
	}
	rec, env := doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"productId":"1","quantity":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second add: %d", rec.Code)
	}

	sum := decodeSummary(t, env)
	if len(sum.Items) != 1 || sum.Items[0].Quantity != 2 || sum.ItemCount != 2 {
		t.Fatalf("expected merged line with quantity 2, got %+v", sum)
	}
	// 2 x 129.99 = 259.98, free shipping, 8% tax.
	if sum.Subtotal.String() != "259.98" || sum.Tax.String() != "20.8" || !sum.Shipping.IsZero() {
		t.Fatalf("unexpected totals %+v", sum)
	}
}

func TestUpdateCartItem(t *testing.T) {
	router := newTestRouter(t)

	_, env := doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"productId":"2","quantity":1}`)
	itemID := decodeSummary(t, env).Items[0].ID

	rec, env := doJSON(t, router, http.MethodPut, "/api/cart/u1/items/"+itemID, `{"quantity":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, env.Error)
	}
	sum := decodeSummary(t, env)
	if sum.Items[0].Quantity != 5 || sum.ItemCount != 5 {
		t.Fatalf("expected quantity 5, got %+v", sum)
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/api/cart/u1/items/"+itemID, `{"quantity":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for quantity 0, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/api/cart/u1/items/no-such-item", `{"quantity":2}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing item, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/api/cart/nobody/items/"+itemID, `{"quantity":2}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing cart, got %d", rec.Code)
	}
}

func TestRemoveCartItem(t *testing.T) {
	router := newTestRouter(t)

	_, env := doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"productId":"1","quantity":2}`)
	itemID := decodeSummary(t, env).Items[0].ID

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/cart/u1/items/no-such-item", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing item, got %d", rec.Code)
	}

	// Failed remove left the cart alone.
	_, env = doJSON(t, router, http.MethodGet, "/api/cart/u1", "")
	if sum := decodeSummary(t, env); sum.ItemCount != 2 {
		t.Fatalf("cart changed by failed remove: %+v", sum)
	}

	rec, env = doJSON(t, router, http.MethodDelete, "/api/cart/u1/items/"+itemID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sum := decodeSummary(t, env); sum.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", sum)
	}
}

func TestClearCartAlwaysSucceeds(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodDelete, "/api/cart/nobody", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 clearing missing cart, got %d", rec.Code)
	}

	doJSON(t, router, http.MethodPost, "/api/cart/u1/items", `{"productId":"1","quantity":3}`)
	rec, _ = doJSON(t, router, http.MethodDelete, "/api/cart/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	_, env = doJSON(t, router, http.MethodGet, "/api/cart/u1", "")
	if sum := decodeSummary(t, env); sum.ItemCount != 0 {
		t.Fatalf("expected cleared cart, got %+v", sum)
	}
}
