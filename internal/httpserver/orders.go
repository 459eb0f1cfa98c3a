package httpserver

import (
	"fmt"
	"net/http"

	"storefront-api/internal/domain"
	ordersvc "storefront-api/internal/service/order"

	"github.com/gin-gonic/gin"
)

func createOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("invalid request body: %w", domain.ErrInvalid))
			return
		}
		order, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, order)
	}
}

func listUserOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		respondData(c, http.StatusOK, orders)
	}
}

func getOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, order)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func updateOrderStatusHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in statusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("invalid request body: %w", domain.ErrInvalid))
			return
		}
		order, err := svc.UpdateStatus(c.Request.Context(), c.Param("orderId"), in.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, order)
	}
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func cancelOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cancelRequest
		// The body is optional; an absent reason falls back to the default.
		_ = c.ShouldBindJSON(&in)
		order, err := svc.Cancel(c.Request.Context(), c.Param("orderId"), in.Reason)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, order)
	}
}
