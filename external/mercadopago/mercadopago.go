package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/apperrors"
	"github.com/Ericatici/payment-service/internal/middleware"
)

const (
	headerIdempotencyKey = "X-Idempotency-Key"
	grantClientCreds     = "client_credentials"

	chargeTypeQr     = "qr"
	qrModeDynamic    = "dynamic"
	orderDescription = "Order payment: "
)

type Config struct {
	BaseURL       string
	AuthPath      string
	OrdersPath    string
	ClientID      string
	ClientSecret  string
	ExternalPosID string
}

func ConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:       os.Getenv("MP_BASE_URL"),
		AuthPath:      os.Getenv("MP_AUTH_PATH"),
		OrdersPath:    os.Getenv("MP_ORDERS_PATH"),
		ClientID:      os.Getenv("MP_CLIENT_ID"),
		ClientSecret:  os.Getenv("MP_CLIENT_SECRET"),
		ExternalPosID: os.Getenv("MP_EXTERNAL_POS_ID"),
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return Config{}, errors.New("MP_CLIENT_ID or MP_CLIENT_SECRET not set")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mercadopago.com"
	}
	if cfg.AuthPath == "" {
		cfg.AuthPath = "/oauth/token"
	}
	if cfg.OrdersPath == "" {
		cfg.OrdersPath = "/v1/orders"
	}
	return cfg, nil
}

// Client drives the two gateway operations the platform needs: creating a QR
// charge and fetching a payment confirmation. Every call carries a bearer
// token managed by the embedded token manager.
type Client struct {
	cfg    Config
	client *http.Client
	tokens *tokenManager
}

func NewClient(cfg Config) *Client {
	c := &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	c.tokens = newTokenManager(c.exchangeToken)
	return c
}

func (c *Client) exchangeToken(ctx context.Context) (*authResponse, error) {
	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", grantClientCreds)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+c.cfg.AuthPath,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to get auth token from Mercado Pago")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to get auth token from Mercado Pago")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apperrors.New(apperrors.KindGatewayIntegration, "auth token request failed: %s", resp.Status)
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.GatewayIntegration(err, "failed to obtain the auth token")
	}
	return &out, nil
}

// ConfirmationResponse mirrors the gateway's payment resource.
type ConfirmationResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// GetPaymentConfirmation fetches the gateway's view of a payment. A 404 means
// the gateway has nothing to confirm and yields (nil, nil); everything else
// that isn't a 2xx is a gateway integration error naming the payment id.
func (c *Client) GetPaymentConfirmation(ctx context.Context, paymentID string) (*ConfirmationResponse, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.cfg.BaseURL + c.cfg.OrdersPath + "/" + paymentID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to get payment confirmation for payment id '%s' from Mercado Pago", paymentID)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to get payment confirmation for payment id '%s' from Mercado Pago", paymentID)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 300 {
		return nil, apperrors.New(apperrors.KindGatewayIntegration, "payment confirmation for payment id '%s' failed: %s", paymentID, resp.Status)
	}

	var out ConfirmationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to get payment confirmation for payment id '%s' from Mercado Pago", paymentID)
	}
	return &out, nil
}

type qrChargeRequest struct {
	Type              string               `json:"type"`
	TotalAmount       string               `json:"total_amount"`
	Description       string               `json:"description"`
	ExternalReference string               `json:"external_reference"`
	Config            qrChargeConfig       `json:"config"`
	Transactions      qrChargeTransactions `json:"transactions"`
}

type qrChargeConfig struct {
	Qr qrConfig `json:"qr"`
}

type qrConfig struct {
	ExternalPosID string `json:"external_pos_id"`
	Mode          string `json:"mode"`
}

type qrChargeTransactions struct {
	Payments []qrPayment `json:"payments"`
}

type qrPayment struct {
	Amount string `json:"amount"`
}

// QrChargeResponse mirrors the gateway's order-creation response. TypeResponse
// may be absent when the gateway returns a charge without a QR payload.
type QrChargeResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	ExternalReference string          `json:"external_reference"`
	TypeResponse      *QrTypeResponse `json:"type_response"`
}

type QrTypeResponse struct {
	QrData string `json:"qr_data"`
}

// CreateQrCharge creates a dynamic QR charge for the order total. Amounts are
// serialized as exact decimal strings. The trace id on ctx, when present, is
// forwarded as the gateway's idempotency header.
func (c *Client) CreateQrCharge(ctx context.Context, orderID int64, totalAmount decimal.Decimal) (*QrChargeResponse, error) {
	amount := totalAmount.String()
	payload := qrChargeRequest{
		Type:              chargeTypeQr,
		TotalAmount:       amount,
		Description:       orderDescription + strconv.FormatInt(orderID, 10),
		ExternalReference: strconv.FormatInt(orderID, 10),
		Config: qrChargeConfig{
			Qr: qrConfig{ExternalPosID: c.cfg.ExternalPosID, Mode: qrModeDynamic},
		},
		Transactions: qrChargeTransactions{
			Payments: []qrPayment{{Amount: amount}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to create new payment QR Code for order '%d' on Mercado Pago", orderID)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+c.cfg.OrdersPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to create new payment QR Code for order '%d' on Mercado Pago", orderID)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if trace := middleware.TraceID(ctx); trace != "" {
		req.Header.Set(headerIdempotencyKey, trace)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to create new payment QR Code for order '%d' on Mercado Pago", orderID)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apperrors.New(apperrors.KindGatewayIntegration, "QR Code creation for order '%d' failed: %s", orderID, resp.Status)
	}

	var out QrChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.GatewayIntegration(err, "error trying to create new payment QR Code for order '%d' on Mercado Pago", orderID)
	}
	return &out, nil
}
