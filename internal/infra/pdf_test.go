package infra

import (
	"bytes"
	"testing"
	"time"

	"warungpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *model.Order {
	teaName := "Es Teh Manis"
	return &model.Order{
		ID:            uuid.New(),
		Total:         15000,
		PaymentMethod: "CASH",
		PaymentStatus: "paid",
		CreatedAt:     time.Date(2026, time.March, 14, 12, 0, 0, 0, time.Local),
		User:          &model.User{ID: uuid.New(), Name: "Budi"},
		Lines: []model.OrderLine{
			{Quantity: 3, Price: 5000, Subtotal: 15000, Menu: &model.Menu{Name: teaName}},
		},
		PaymentLog: &model.PaymentLog{AmountPaid: 20000, ChangeReturned: 5000},
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	raw, err := GenerateReceiptPDF(sampleOrder())
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestGenerateReceiptPDFWithoutRelations(t *testing.T) {
	// No user, lines, or payment log preloaded — still renders
	order := &model.Order{
		ID:            uuid.New(),
		Total:         1000,
		PaymentMethod: "CASH",
		PaymentStatus: "unpaid",
		CreatedAt:     time.Now(),
	}
	raw, err := GenerateReceiptPDF(order)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 15000", formatRupiah(15000))
	assert.Equal(t, "Rp 0", formatRupiah(0))
}
