package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Ericatici/payment-service/internal/middleware"
	"github.com/Ericatici/payment-service/internal/model"
	"github.com/Ericatici/payment-service/internal/services"
)

type checkoutRequest struct {
	Items []model.OrderItem `json:"items"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	p.POST("/checkout", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		var req checkoutRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		orderID, err := os.Checkout(c.Request().Context(), cl.CustomerID, req.Items)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"order_id": orderID,
			"status":   model.PaymentStatusPending,
		})
	})

	// creates the gateway QR charge and pins its payment id on the order
	p.POST("/:orderId/payment", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil || orderID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		data, err := os.RequestPayment(c.Request().Context(), cl.CustomerID, orderID)
		if err != nil {
			return kindError(c, err)
		}
		return c.JSON(http.StatusOK, data)
	})

	p.GET("/:orderId", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil || orderID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		order, err := os.GetOrder(c.Request().Context(), cl.CustomerID, orderID)
		if err != nil {
			return kindError(c, err)
		}
		return c.JSON(http.StatusOK, order)
	})

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		orders, err := os.ListOrders(c.Request().Context(), cl.CustomerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
		return c.JSON(http.StatusOK, orders)
	})
}
