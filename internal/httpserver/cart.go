package httpserver

import (
	"fmt"
	"net/http"

	"storefront-api/internal/domain"
	cartsvc "storefront-api/internal/service/cart"

	"github.com/gin-gonic/gin"
)

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Get(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, summary)
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("invalid request body: %w", domain.ErrInvalid))
			return
		}
		summary, err := svc.AddItem(c.Request.Context(), c.Param("userId"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, summary)
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in updateItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("invalid request body: %w", domain.ErrInvalid))
			return
		}
		summary, err := svc.UpdateItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"), in.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, summary)
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.RemoveItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, summary)
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), c.Param("userId")); err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
