package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-api/internal/domain"
	cartrepo "storefront-api/internal/repository/cart"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
	cartsvc "storefront-api/internal/service/cart"
	ordersvc "storefront-api/internal/service/order"
	productsvc "storefront-api/internal/service/product"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := productrepo.NewMemory()
	seed := []domain.Product{
		{ID: "1", Name: "Wireless Headphones", Price: decimal.RequireFromString("129.99"), Category: "electronics", Stock: 10, Rating: 4.5},
		{ID: "2", Name: "Desk Lamp", Price: decimal.RequireFromString("29.99"), Category: "home", Stock: 25, Rating: 4.0},
	}
	for _, p := range seed {
		if _, err := products.Upsert(context.Background(), p); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	carts := cartrepo.NewMemory()
	orders := orderrepo.NewMemory()

	deps := Deps{
		ProductSvc: productsvc.New(products, 0),
		CartSvc:    cartsvc.New(carts, products),
		OrderSvc:   ordersvc.New(orders, carts, products),
	}
	logger := log.New(io.Discard, "", 0)
	return buildRouter(logger, nil, deps, nil)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %s %s: %v (body %s)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for memory backend, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected success, got %d %s", rec.Code, env.Error)
	}
	var products []domain.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/products?category=home", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(env.Data, &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "2" {
		t.Fatalf("expected filtered listing, got %+v", products)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)
	rec, env := doJSON(t, router, http.MethodGet, "/api/products/999", "")
	if rec.Code != http.StatusNotFound || env.Success {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(t)
	rec, env := doJSON(t, router, http.MethodGet, "/api/products/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var categories []string
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", categories)
	}
}
