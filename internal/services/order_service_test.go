package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ericatici/payment-service/internal/apperrors"
	"github.com/Ericatici/payment-service/internal/model"
)

type fakeOrderBook struct {
	fakeOrderStore

	nextID      int64
	attached    map[int64]string
	attachCalls int
}

func (f *fakeOrderBook) CreateOrder(_ context.Context, customerID int64, totalPrice decimal.Decimal) (int64, error) {
	f.nextID++
	f.orders[f.nextID] = &model.Order{
		OrderID:       f.nextID,
		CustomerID:    customerID,
		TotalPrice:    totalPrice,
		PaymentStatus: model.PaymentStatusPending,
	}
	return f.nextID, nil
}

func (f *fakeOrderBook) AttachPaymentID(_ context.Context, orderID int64, paymentID string) error {
	f.attachCalls++
	if f.attached == nil {
		f.attached = map[int64]string{}
	}
	f.attached[orderID] = paymentID
	id := paymentID
	f.orders[orderID].PaymentID = &id
	return nil
}

func (f *fakeOrderBook) GetOrdersByCustomer(_ context.Context, customerID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	products map[int64]*model.Product
}

func (f *fakeCatalog) GetByID(_ context.Context, id int64) (*model.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, assert.AnError
}

type fakeQrCharger struct {
	data  *model.PaymentData
	calls int
}

func (f *fakeQrCharger) GeneratePaymentQrCode(_ context.Context, orderID int64, totalPrice decimal.Decimal) (*model.PaymentData, error) {
	f.calls++
	return f.data, nil
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[int64]*model.Product{
		10: {ProductID: 10, Name: "Burger", Category: "lanche", Price: decimal.NewFromFloat(19.90)},
		11: {ProductID: 11, Name: "Fries", Category: "acompanhamento", Price: decimal.NewFromFloat(9.50)},
	}}
}

func TestCheckoutPricesItemsAndCreatesPendingOrder(t *testing.T) {
	orders := &fakeOrderBook{fakeOrderStore: fakeOrderStore{orders: map[int64]*model.Order{}}}
	svc := NewOrderService(orders, newCatalog(), &fakeQrCharger{})

	orderID, err := svc.Checkout(context.Background(), 7, []model.OrderItem{
		{ProductID: 10, Quantity: 2},
		{ProductID: 11, Quantity: 1},
	})

	require.NoError(t, err)
	created := orders.orders[orderID]
	require.NotNil(t, created)
	assert.Equal(t, model.PaymentStatusPending, created.PaymentStatus)
	assert.True(t, created.TotalPrice.Equal(decimal.NewFromFloat(49.30)), "got %s", created.TotalPrice)
}

func TestCheckoutRejectsEmptyAndInvalidItems(t *testing.T) {
	orders := &fakeOrderBook{fakeOrderStore: fakeOrderStore{orders: map[int64]*model.Order{}}}
	svc := NewOrderService(orders, newCatalog(), &fakeQrCharger{})

	_, err := svc.Checkout(context.Background(), 7, nil)
	assert.Error(t, err)

	_, err = svc.Checkout(context.Background(), 7, []model.OrderItem{{ProductID: 10, Quantity: 0}})
	assert.Error(t, err)
}

func TestRequestPaymentAttachesGatewayPaymentID(t *testing.T) {
	orders := &fakeOrderBook{fakeOrderStore: fakeOrderStore{orders: map[int64]*model.Order{
		1: {OrderID: 1, CustomerID: 7, TotalPrice: decimal.NewFromInt(30), PaymentStatus: model.PaymentStatusPending},
	}}}
	qr := "qr-payload"
	charger := &fakeQrCharger{data: &model.PaymentData{PaymentID: "mp-77", QrCode: &qr}}
	svc := NewOrderService(orders, newCatalog(), charger)

	data, err := svc.RequestPayment(context.Background(), 7, 1)

	require.NoError(t, err)
	assert.Equal(t, "mp-77", data.PaymentID)
	assert.Equal(t, 1, charger.calls)
	assert.Equal(t, 1, orders.attachCalls)
	assert.Equal(t, "mp-77", orders.attached[1])
}

func TestRequestPaymentGuards(t *testing.T) {
	paid := "mp-1"
	orders := &fakeOrderBook{fakeOrderStore: fakeOrderStore{orders: map[int64]*model.Order{
		1: {OrderID: 1, CustomerID: 7, PaymentStatus: model.PaymentStatusApproved},
		2: {OrderID: 2, CustomerID: 7, PaymentStatus: model.PaymentStatusPending, PaymentID: &paid},
		3: {OrderID: 3, CustomerID: 8, PaymentStatus: model.PaymentStatusPending},
	}}}
	charger := &fakeQrCharger{}
	svc := NewOrderService(orders, newCatalog(), charger)

	_, err := svc.RequestPayment(context.Background(), 7, 99)
	assert.Equal(t, apperrors.KindOrderNotFound, apperrors.KindOf(err))

	_, err = svc.RequestPayment(context.Background(), 7, 1)
	assert.EqualError(t, err, "order cannot be paid")

	_, err = svc.RequestPayment(context.Background(), 7, 2)
	assert.EqualError(t, err, "payment already requested")

	_, err = svc.RequestPayment(context.Background(), 7, 3)
	assert.EqualError(t, err, "forbidden")

	assert.Zero(t, charger.calls, "guard failures must not create charges")
	assert.Zero(t, orders.attachCalls)
}
