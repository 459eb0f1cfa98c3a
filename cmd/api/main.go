package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/httpserver"
	cartrepo "storefront-api/internal/repository/cart"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
	"storefront-api/internal/seed"
	cartsvc "storefront-api/internal/service/cart"
	ordersvc "storefront-api/internal/service/order"
	productsvc "storefront-api/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool        *pgxpool.Pool
		productRepo productrepo.Repository
		cartRepo    cartrepo.Repository
		orderRepo   orderrepo.Repository
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()

		productRepo = productrepo.NewPostgres(pool, logger)
		cartRepo = cartrepo.NewPostgres(pool)
		orderRepo = orderrepo.NewPostgres(pool, logger)
	case config.StorageMemory:
		productRepo = productrepo.NewMemory()
		cartRepo = cartrepo.NewMemory()
		orderRepo = orderrepo.NewMemory()

		// The in-memory backend starts empty, so load the demo catalog.
		if err := seed.Apply(ctx, productRepo); err != nil {
			logger.Fatalf("seed catalog: %v", err)
		}
	default:
		logger.Fatalf("unknown storage backend %q", cfg.Storage)
	}

	productService := productsvc.New(productRepo, cfg.CatalogCacheTTL)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		ProductSvc: productService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (storage=%s)", cfg.HTTPAddr, cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
