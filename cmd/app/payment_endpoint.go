package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/apperrors"
	"github.com/Ericatici/payment-service/internal/model"
	"github.com/Ericatici/payment-service/internal/services"
)

type paymentDataRequest struct {
	OrderID    int64           `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService) {
	p := g.Group("/payments")

	// ============================
	// GATEWAY WEBHOOK (public)
	// ============================
	p.POST("/webhook", func(c echo.Context) error {
		var n model.PaymentNotification
		if err := c.Bind(&n); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}

		if err := ps.ProcessPaymentConfirmation(c.Request().Context(), &n); err != nil {
			return kindError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// ============================
	// PAYMENT STATUS POLL
	// ============================
	p.GET("/:orderId/status", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil || orderID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		status, err := ps.GetPaymentStatus(c.Request().Context(), orderID)
		if err != nil {
			return kindError(c, err)
		}
		return c.JSON(http.StatusOK, status)
	})

	// ============================
	// QR CHARGE CREATION
	// ============================
	p.POST("/qrcode", func(c echo.Context) error {
		var req paymentDataRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
		}
		if req.OrderID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		data, err := ps.GeneratePaymentQrCode(c.Request().Context(), req.OrderID, req.TotalPrice)
		if err != nil {
			return kindError(c, err)
		}
		return c.JSON(http.StatusOK, data)
	})
}

// kindError maps tagged error kinds to HTTP statuses. Gateway and unexpected
// failures are logged server-side and surfaced without internal detail.
func kindError(c echo.Context, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindOrderNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case apperrors.KindInvalidPayment:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case apperrors.KindGatewayIntegration:
		log.Printf("gateway integration failure: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment gateway error"})
	default:
		log.Printf("unexpected error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
