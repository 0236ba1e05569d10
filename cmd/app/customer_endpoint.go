package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ericatici/payment-service/internal/middleware"
	"github.com/Ericatici/payment-service/internal/services"
)

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Fullname *string `json:"fullname,omitempty"`
	CPF      *string `json:"cpf,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerCustomerRoutes(g *echo.Group, cs *services.CustomerService) {
	p := g.Group("/customers")

	p.POST("/register", func(c echo.Context) error {
		var req registerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		id, err := cs.Register(c.Request().Context(), req.Email, req.Password, req.Fullname, req.CPF)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"customer_id": id})
	})

	p.POST("/login", func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		token, err := cs.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"token": token})
	})

	p.GET("/me", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		customer, err := cs.GetByID(c.Request().Context(), cl.CustomerID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, customer)
	}, middleware.JWTMiddleware())
}
