package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/model"
)

// StatusMapping translates gateway-native payment statuses into the order's
// closed three-state enum. Statuses outside the mapping leave the order
// untouched rather than guessing a terminal state.
type StatusMapping map[string]model.PaymentStatus

func DefaultStatusMapping() StatusMapping {
	return StatusMapping{
		"approved":  model.PaymentStatusApproved,
		"rejected":  model.PaymentStatusRejected,
		"cancelled": model.PaymentStatusRejected,
		"expired":   model.PaymentStatusRejected,
	}
}

type OrderRepository struct {
	DB       *pgxpool.Pool
	statuses StatusMapping
}

func NewOrderRepository(db *pgxpool.Pool, statuses StatusMapping) *OrderRepository {
	if statuses == nil {
		statuses = DefaultStatusMapping()
	}
	return &OrderRepository{DB: db, statuses: statuses}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, customerID int64, totalPrice decimal.Decimal) (int64, error) {
	var orderID int64
	q := `
		INSERT INTO orders (customerid, totalprice, paymentstatus, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING orderid
	`
	err := r.DB.QueryRow(ctx, q, customerID, totalPrice, model.PaymentStatusPending).Scan(&orderID)
	return orderID, err
}

// GetOrderByID returns the order, or nil when no such order exists.
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	q := `
		SELECT orderid, customerid, totalprice, paymentid, paymentstatus, created_at
		FROM orders
		WHERE orderid=$1
	`
	return r.scanOrder(r.DB.QueryRow(ctx, q, orderID))
}

// GetOrderByPaymentID locates the order carrying the given gateway payment id,
// or nil when none matches.
func (r *OrderRepository) GetOrderByPaymentID(ctx context.Context, paymentID string) (*model.Order, error) {
	q := `
		SELECT orderid, customerid, totalprice, paymentid, paymentstatus, created_at
		FROM orders
		WHERE paymentid=$1
	`
	return r.scanOrder(r.DB.QueryRow(ctx, q, paymentID))
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.OrderID,
		&o.CustomerID,
		&o.TotalPrice,
		&o.PaymentID,
		&o.PaymentStatus,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// AttachPaymentID records the gateway charge id created for the order.
func (r *OrderRepository) AttachPaymentID(ctx context.Context, orderID int64, paymentID string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE orders
		SET paymentid=$2
		WHERE orderid=$1
	`, orderID, paymentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// UpdateOrderPaymentStatus applies a gateway confirmation to the order. The
// PENDING guard in the WHERE clause keeps terminal statuses immutable even if
// a stale confirmation arrives late.
func (r *OrderRepository) UpdateOrderPaymentStatus(ctx context.Context, orderID int64, confirmation *model.PaymentConfirmation) error {
	if confirmation == nil {
		return errors.New("payment confirmation is required")
	}

	status, ok := r.statuses[confirmation.Status]
	if !ok {
		// Gateway status with no mapping: the order stays PENDING.
		return nil
	}

	_, err := r.DB.Exec(ctx, `
		UPDATE orders
		SET paymentstatus=$2
		WHERE orderid=$1
		  AND paymentstatus=$3
	`, orderID, status, model.PaymentStatusPending)
	return err
}

// GetOrdersByCustomer returns the customer's orders, newest first.
func (r *OrderRepository) GetOrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	q := `
		SELECT orderid, customerid, totalprice, paymentid, paymentstatus, created_at
		FROM orders
		WHERE customerid=$1
		ORDER BY orderid DESC
	`
	rows, err := r.DB.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.OrderID, &o.CustomerID, &o.TotalPrice, &o.PaymentID, &o.PaymentStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
