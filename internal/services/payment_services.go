package services

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/apperrors"
	"github.com/Ericatici/payment-service/internal/model"
)

// OrderStore is the order aggregate's payment state as the reconciliation
// flow sees it. Lookups return nil when no order matches.
type OrderStore interface {
	GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (*model.Order, error)
	UpdateOrderPaymentStatus(ctx context.Context, orderID int64, confirmation *model.PaymentConfirmation) error
}

// PaymentStore is the gateway-backed view of payments.
type PaymentStore interface {
	GetPaymentStatus(ctx context.Context, paymentID string) (*model.PaymentConfirmation, error)
	GetPaymentData(ctx context.Context, orderID int64, totalPrice decimal.Decimal) (*model.PaymentData, error)
}

type PaymentService struct {
	Orders   OrderStore
	Payments PaymentStore
}

func NewPaymentService(orders OrderStore, payments PaymentStore) *PaymentService {
	return &PaymentService{Orders: orders, Payments: payments}
}

// GetPaymentStatus is the poll path. Orders already in a terminal status are
// returned as-is without touching the gateway; pending orders get a fresh
// confirmation applied and are re-read.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, orderID int64) (*model.OrderPaymentStatus, error) {
	order, err := s.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.OrderNotFound("order with id %d not found", orderID)
	}

	if order.PaymentStatus != model.PaymentStatusPending {
		log.Printf("order %d in final payment status: %s", orderID, order.PaymentStatus)
		return &model.OrderPaymentStatus{OrderID: orderID, PaymentStatus: order.PaymentStatus}, nil
	}

	var paymentID string
	if order.PaymentID != nil {
		paymentID = *order.PaymentID
	}
	if err := s.applyConfirmation(ctx, order.OrderID, paymentID); err != nil {
		return nil, err
	}

	order, err = s.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.OrderNotFound("order with id %d not found", orderID)
	}
	return &model.OrderPaymentStatus{OrderID: orderID, PaymentStatus: order.PaymentStatus}, nil
}

// ProcessPaymentConfirmation is the push path: the gateway tells us a payment
// changed and we locate the order by the gateway payment id.
func (s *PaymentService) ProcessPaymentConfirmation(ctx context.Context, notification *model.PaymentNotification) error {
	paymentID := notification.Data.ID

	order, err := s.Orders.GetOrderByPaymentID(ctx, paymentID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.OrderNotFound("order with paymentId %s not found", paymentID)
	}

	log.Printf("processing payment confirmation for payment id %s", paymentID)
	return s.applyConfirmation(ctx, order.OrderID, paymentID)
}

// applyConfirmation is the shared core of both paths: fetch a fresh
// confirmation from the gateway and hand it to the order store.
func (s *PaymentService) applyConfirmation(ctx context.Context, orderID int64, paymentID string) error {
	confirmation, err := s.Payments.GetPaymentStatus(ctx, paymentID)
	if err != nil {
		return err
	}
	if confirmation == nil {
		return apperrors.InvalidPayment("no payment confirmation received for paymentId %s", paymentID)
	}
	return s.Orders.UpdateOrderPaymentStatus(ctx, orderID, confirmation)
}

// GeneratePaymentQrCode requests a payable QR charge for the order total.
func (s *PaymentService) GeneratePaymentQrCode(ctx context.Context, orderID int64, totalPrice decimal.Decimal) (*model.PaymentData, error) {
	log.Printf("generating payment QR code for order %d", orderID)
	return s.Payments.GetPaymentData(ctx, orderID, totalPrice)
}
