package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/middleware"
	"github.com/Ericatici/payment-service/internal/services"
)

type productRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	p := g.Group("/products")

	p.GET("", func(c echo.Context) error {
		products, err := ps.ListAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
		return c.JSON(http.StatusOK, products)
	})

	p.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}

		product, err := ps.GetByID(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, product)
	})

	p.POST("", func(c echo.Context) error {
		var req productRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		id, err := ps.Create(c.Request().Context(), req.Name, req.Category, req.Description, req.Price)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"product_id": id})
	}, middleware.JWTMiddleware())

	p.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}

		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}, middleware.JWTMiddleware())
}
