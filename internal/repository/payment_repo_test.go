package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ericatici/payment-service/external/mercadopago"
)

type fakeGateway struct {
	confirmation *mercadopago.ConfirmationResponse
	charge       *mercadopago.QrChargeResponse
	err          error
}

func (f *fakeGateway) GetPaymentConfirmation(_ context.Context, paymentID string) (*mercadopago.ConfirmationResponse, error) {
	return f.confirmation, f.err
}

func (f *fakeGateway) CreateQrCharge(_ context.Context, orderID int64, totalAmount decimal.Decimal) (*mercadopago.QrChargeResponse, error) {
	return f.charge, f.err
}

func TestGetPaymentStatusMapsGatewayResponse(t *testing.T) {
	repo := NewPaymentRepository(&fakeGateway{
		confirmation: &mercadopago.ConfirmationResponse{
			ID:          "mp-123",
			Status:      "approved",
			TotalAmount: decimal.NewFromFloat(50.0),
		},
	})

	conf, err := repo.GetPaymentStatus(context.Background(), "mp-123")
	require.NoError(t, err)
	assert.Equal(t, "mp-123", conf.ID)
	assert.Equal(t, "approved", conf.Status)
	assert.True(t, conf.TotalAmount.Equal(decimal.NewFromFloat(50.0)))
}

func TestGetPaymentStatusNilResponseStaysNil(t *testing.T) {
	repo := NewPaymentRepository(&fakeGateway{})

	conf, err := repo.GetPaymentStatus(context.Background(), "mp-404")
	require.NoError(t, err)
	assert.Nil(t, conf)
}

func TestGetPaymentDataWithQrBlock(t *testing.T) {
	repo := NewPaymentRepository(&fakeGateway{
		charge: &mercadopago.QrChargeResponse{
			ID:           "mp-9",
			Status:       "created",
			TypeResponse: &mercadopago.QrTypeResponse{QrData: "00020101qr"},
		},
	})

	data, err := repo.GetPaymentData(context.Background(), 42, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, "mp-9", data.PaymentID)
	require.NotNil(t, data.QrCode)
	assert.Equal(t, "00020101qr", *data.QrCode)
}

func TestGetPaymentDataWithoutQrBlockDegradesGracefully(t *testing.T) {
	repo := NewPaymentRepository(&fakeGateway{
		charge: &mercadopago.QrChargeResponse{ID: "mp-9", Status: "created"},
	})

	data, err := repo.GetPaymentData(context.Background(), 42, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, "mp-9", data.PaymentID)
	assert.Nil(t, data.QrCode)
}

func TestDefaultStatusMappingClosesTheEnum(t *testing.T) {
	m := DefaultStatusMapping()
	assert.Equal(t, "APPROVED", string(m["approved"]))
	assert.Equal(t, "REJECTED", string(m["rejected"]))
	_, mapped := m["in_process"]
	assert.False(t, mapped, "unknown gateway statuses stay unmapped")
}
