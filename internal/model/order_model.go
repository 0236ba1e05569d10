package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the order's payment state. It only ever moves
// PENDING -> APPROVED or PENDING -> REJECTED; the terminal states are final.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Final reports whether no further gateway queries should be issued for
// an order in this status.
func (s PaymentStatus) Final() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

type Order struct {
	OrderID       int64           `json:"orderid"`
	CustomerID    int64           `json:"customerid"`
	TotalPrice    decimal.Decimal `json:"totalprice"`
	PaymentID     *string         `json:"paymentid,omitempty"` // gateway charge id, set once a QR code exists
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

type OrderItem struct {
	ProductID int64 `json:"productid"`
	Quantity  int64 `json:"quantity"`
}
