package service

import (
	"context"
	"testing"

	"warungpos/internal/apierror"
	"warungpos/internal/dto"
	"warungpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, orders *stubOrderRepo, total int64) uuid.UUID {
	t.Helper()
	order := &model.Order{UserID: uuid.New(), Total: total, PaymentMethod: "CASH", PaymentStatus: "unpaid"}
	require.NoError(t, orders.Create(context.Background(), order))
	return order.ID
}

func TestPaymentLogCreateComputesChange(t *testing.T) {
	logs := newStubPaymentLogRepo()
	orders := newStubOrderRepo()
	orderID := seedOrder(t, orders, 42000)

	svc := NewPaymentLogService(logs, orders)

	resp, err := svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    orderID.String(),
		AmountPaid: ptr(int64(50000)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(50000), resp.AmountPaid)
	assert.Equal(t, int64(8000), resp.ChangeReturned)
	assert.Equal(t, orderID.String(), resp.OrderID)
}

func TestPaymentLogCreateExactPaymentZeroChange(t *testing.T) {
	logs := newStubPaymentLogRepo()
	orders := newStubOrderRepo()
	orderID := seedOrder(t, orders, 42000)

	svc := NewPaymentLogService(logs, orders)

	resp, err := svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    orderID.String(),
		AmountPaid: ptr(int64(42000)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.ChangeReturned)
}

func TestPaymentLogCreateInsufficientAmount(t *testing.T) {
	logs := newStubPaymentLogRepo()
	orders := newStubOrderRepo()
	orderID := seedOrder(t, orders, 42000)

	svc := NewPaymentLogService(logs, orders)

	_, err := svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    orderID.String(),
		AmountPaid: ptr(int64(41999)),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.StatusOf(err))
	assert.EqualError(t, err, "amountPaid must cover the order total.")
}

func TestPaymentLogCreateDuplicateOrder(t *testing.T) {
	logs := newStubPaymentLogRepo()
	orders := newStubOrderRepo()
	orderID := seedOrder(t, orders, 10000)

	svc := NewPaymentLogService(logs, orders)

	_, err := svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    orderID.String(),
		AmountPaid: ptr(int64(10000)),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    orderID.String(),
		AmountPaid: ptr(int64(20000)),
	})
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
	assert.EqualError(t, err, "Payment log for this order already exists.")
}

func TestPaymentLogCreateUnknownOrder(t *testing.T) {
	svc := NewPaymentLogService(newStubPaymentLogRepo(), newStubOrderRepo())

	_, err := svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    uuid.NewString(),
		AmountPaid: ptr(int64(10000)),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestPaymentLogUpdateRecomputesChange(t *testing.T) {
	logs := newStubPaymentLogRepo()
	orders := newStubOrderRepo()
	orderID := seedOrder(t, orders, 30000)

	svc := NewPaymentLogService(logs, orders)

	created, err := svc.Create(context.Background(), dto.CreatePaymentLogRequest{
		OrderID:    orderID.String(),
		AmountPaid: ptr(int64(30000)),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), uuid.MustParse(created.PaymentLogID),
		dto.UpdatePaymentLogRequest{AmountPaid: ptr(int64(100000))})
	require.NoError(t, err)
	assert.Equal(t, int64(70000), updated.ChangeReturned)

	// Lowering below the current order total is rejected
	_, err = svc.Update(context.Background(), uuid.MustParse(created.PaymentLogID),
		dto.UpdatePaymentLogRequest{AmountPaid: ptr(int64(29999))})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.StatusOf(err))
}
