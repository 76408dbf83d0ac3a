package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderFromCart_SnapshotsLinesAndTotal(t *testing.T) {
	cart := Cart{UserID: 42}
	require.NoError(t, cart.Upsert(1, 0, 10, 2))
	require.NoError(t, cart.Upsert(2, 0, 5, 1))

	order := NewOrderFromCart(&cart, "Jane Roe", "0555000111", "12 Main St", PaymentMethodCreditCard)

	assert.Equal(t, uint(42), order.UserID)
	assert.Equal(t, int64(25), order.TotalPrice)
	require.Len(t, order.Items, 2)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, ShippingProcessing, order.ShippingStatus)
	assert.Equal(t, 3, order.ItemCount())

	// The snapshot is independent of later cart mutations
	require.NoError(t, cart.SetQuantity(1, 0, 9))
	assert.Equal(t, int64(25), order.TotalPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestNewOrderFromCart_KeepsCapturedPrices(t *testing.T) {
	cart := Cart{UserID: 1}
	require.NoError(t, cart.Upsert(1, 0, 1000, 1))

	order := NewOrderFromCart(&cart, "A", "B", "C", PaymentMethodCreditCard)

	// A catalog price change after checkout must not touch the order
	cart.Items[0].Price = 9999
	assert.Equal(t, int64(1000), order.Items[0].Price)
}

func TestApplyGatewayStatus(t *testing.T) {
	tests := []struct {
		name         string
		initial      string
		status       string
		wantPayment  string
		wantShipping string
	}{
		{"paid notification", PaymentInitiated, "paid", PaymentPaid, ShippingPending},
		{"failed notification", PaymentInitiated, "failed", PaymentFailed, ShippingCanceled},
		{"unknown status means failed", PaymentPending, "voided", PaymentFailed, ShippingCanceled},
		{"replayed paid webhook", PaymentPaid, "paid", PaymentPaid, ShippingPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order{PaymentStatus: tt.initial, ShippingStatus: ShippingProcessing}
			if tt.initial == PaymentPaid {
				order.ShippingStatus = ShippingPending
			}
			order.ApplyGatewayStatus(tt.status)
			assert.Equal(t, tt.wantPayment, order.PaymentStatus)
			assert.Equal(t, tt.wantShipping, order.ShippingStatus)
		})
	}
}

func TestApplyGatewayStatus_NeverRegressesPaid(t *testing.T) {
	order := Order{PaymentStatus: PaymentPaid, ShippingStatus: ShippingPending}

	order.ApplyGatewayStatus("failed")

	assert.Equal(t, PaymentPaid, order.PaymentStatus)
	assert.Equal(t, ShippingPending, order.ShippingStatus)
}

func TestCanTransitionPayment(t *testing.T) {
	assert.True(t, CanTransitionPayment(PaymentPending, PaymentPaid))
	assert.True(t, CanTransitionPayment(PaymentInitiated, PaymentFailed))
	assert.True(t, CanTransitionPayment(PaymentFailed, PaymentPaid))
	assert.True(t, CanTransitionPayment(PaymentPaid, PaymentPaid))

	assert.False(t, CanTransitionPayment(PaymentPaid, PaymentPending))
	assert.False(t, CanTransitionPayment(PaymentPaid, PaymentInitiated))
	assert.False(t, CanTransitionPayment(PaymentPaid, PaymentFailed))
}

func TestStatusEnums(t *testing.T) {
	for _, status := range []string{PaymentPending, PaymentInitiated, PaymentPaid, PaymentFailed} {
		assert.True(t, IsValidPaymentStatus(status), status)
	}
	assert.False(t, IsValidPaymentStatus("refunded"))
	assert.False(t, IsValidPaymentStatus(""))

	for _, status := range []string{ShippingProcessing, ShippingPending, ShippingOnTheWay, ShippingDelivered, ShippingCanceled} {
		assert.True(t, IsValidShippingStatus(status), status)
	}
	assert.False(t, IsValidShippingStatus("shipped"))
	assert.False(t, IsValidShippingStatus(""))
}
