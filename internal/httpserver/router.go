package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(corsOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	products := api.Group("/products")
	products.GET("", listProductsHandler(deps.ProductSvc))
	products.GET("/categories", listCategoriesHandler(deps.ProductSvc))
	products.GET("/:productId", getProductHandler(deps.ProductSvc))

	cart := api.Group("/cart")
	cart.GET("/:userId", getCartHandler(deps.CartSvc))
	cart.POST("/:userId/items", addCartItemHandler(deps.CartSvc))
	cart.PUT("/:userId/items/:itemId", updateCartItemHandler(deps.CartSvc))
	cart.DELETE("/:userId/items/:itemId", removeCartItemHandler(deps.CartSvc))
	cart.DELETE("/:userId", clearCartHandler(deps.CartSvc))

	orders := api.Group("/orders")
	orders.POST("", createOrderHandler(deps.OrderSvc))
	orders.GET("/user/:userId", listUserOrdersHandler(deps.OrderSvc))
	orders.GET("/:orderId", getOrderHandler(deps.OrderSvc))
	orders.PATCH("/:orderId/status", updateOrderStatusHandler(deps.OrderSvc))
	orders.PATCH("/:orderId/cancel", cancelOrderHandler(deps.OrderSvc))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
