package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/apperrors"
	"github.com/Ericatici/payment-service/internal/model"
)

// OrderBook extends OrderStore with the write operations checkout needs.
type OrderBook interface {
	OrderStore
	CreateOrder(ctx context.Context, customerID int64, totalPrice decimal.Decimal) (int64, error)
	AttachPaymentID(ctx context.Context, orderID int64, paymentID string) error
	GetOrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}

type ProductCatalog interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// QrCharger is the slice of the payment service the order flow uses.
type QrCharger interface {
	GeneratePaymentQrCode(ctx context.Context, orderID int64, totalPrice decimal.Decimal) (*model.PaymentData, error)
}

type OrderService struct {
	Orders   OrderBook
	Products ProductCatalog
	Payments QrCharger
}

func NewOrderService(orders OrderBook, products ProductCatalog, payments QrCharger) *OrderService {
	return &OrderService{Orders: orders, Products: products, Payments: payments}
}

// Checkout prices the items against the catalog and creates a pending-payment order.
func (s *OrderService) Checkout(ctx context.Context, customerID int64, items []model.OrderItem) (int64, error) {
	if len(items) == 0 {
		return 0, errors.New("order has no items")
	}

	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return 0, errors.New("invalid item quantity")
		}
		p, err := s.Products.GetByID(ctx, it.ProductID)
		if err != nil {
			return 0, err
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	return s.Orders.CreateOrder(ctx, customerID, total)
}

// RequestPayment creates the QR charge for an order and records the gateway
// payment id on it. Only the order's owner can pay, only once, and only while
// the order is still pending.
func (s *OrderService) RequestPayment(ctx context.Context, customerID, orderID int64) (*model.PaymentData, error) {
	order, err := s.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.OrderNotFound("order with id %d not found", orderID)
	}

	if order.CustomerID != customerID {
		return nil, errors.New("forbidden")
	}
	if order.PaymentStatus.Final() {
		return nil, errors.New("order cannot be paid")
	}
	if order.PaymentID != nil {
		return nil, errors.New("payment already requested")
	}

	data, err := s.Payments.GeneratePaymentQrCode(ctx, orderID, order.TotalPrice)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperrors.InvalidPayment("no payment data received for order %d", orderID)
	}

	if err := s.Orders.AttachPaymentID(ctx, orderID, data.PaymentID); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *OrderService) GetOrder(ctx context.Context, customerID, orderID int64) (*model.Order, error) {
	order, err := s.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CustomerID != customerID {
		return nil, apperrors.OrderNotFound("order with id %d not found", orderID)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return s.Orders.GetOrdersByCustomer(ctx, customerID)
}
