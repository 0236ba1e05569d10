package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/external/mercadopago"
	"github.com/Ericatici/payment-service/internal/model"
)

// Gateway is the slice of the Mercado Pago client the payment repository uses.
type Gateway interface {
	GetPaymentConfirmation(ctx context.Context, paymentID string) (*mercadopago.ConfirmationResponse, error)
	CreateQrCharge(ctx context.Context, orderID int64, totalAmount decimal.Decimal) (*mercadopago.QrChargeResponse, error)
}

// PaymentRepository hides the gateway wire types behind the domain models.
type PaymentRepository struct {
	Gateway Gateway
}

func NewPaymentRepository(g Gateway) *PaymentRepository {
	return &PaymentRepository{Gateway: g}
}

// GetPaymentStatus returns the gateway's confirmation for a payment, or nil
// when the gateway acknowledged the call but had nothing to confirm.
func (r *PaymentRepository) GetPaymentStatus(ctx context.Context, paymentID string) (*model.PaymentConfirmation, error) {
	resp, err := r.Gateway.GetPaymentConfirmation(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}

	return &model.PaymentConfirmation{
		ID:          resp.ID,
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
	}, nil
}

// GetPaymentData creates a QR charge for the order total. A charge without a
// QR block yields a nil QrCode, not an error.
func (r *PaymentRepository) GetPaymentData(ctx context.Context, orderID int64, totalPrice decimal.Decimal) (*model.PaymentData, error) {
	resp, err := r.Gateway.CreateQrCharge(ctx, orderID, totalPrice)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}

	data := &model.PaymentData{PaymentID: resp.ID}
	if resp.TypeResponse != nil {
		qr := resp.TypeResponse.QrData
		data.QrCode = &qr
	}
	return data, nil
}
