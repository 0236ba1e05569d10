package model

import "github.com/shopspring/decimal"

// PaymentConfirmation is what the gateway reports for a payment when asked.
// It is a transient carrier: fetched fresh on every query, applied to the
// order, never stored.
type PaymentConfirmation struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"` // gateway vocabulary ("approved", "rejected", ...)
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// PaymentData is the payable artifact returned when a QR charge is created.
type PaymentData struct {
	PaymentID string  `json:"payment_id"`
	QrCode    *string `json:"qr_code,omitempty"` // nil when the gateway omitted the QR block
}

// OrderPaymentStatus is the consult result for an order.
type OrderPaymentStatus struct {
	OrderID       int64         `json:"order_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// PaymentNotification is the gateway webhook body. Only Data.ID is consumed;
// the rest is carried for logging.
type PaymentNotification struct {
	ID          int64                   `json:"id"`
	LiveMode    bool                    `json:"live_mode"`
	Type        string                  `json:"type"`
	DateCreated string                  `json:"date_created"`
	UserID      int64                   `json:"user_id"`
	APIVersion  string                  `json:"api_version"`
	Action      string                  `json:"action"`
	Data        PaymentNotificationData `json:"data"`
}

type PaymentNotificationData struct {
	ID string `json:"id"`
}
