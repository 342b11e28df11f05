package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderNew, OrderProcessing, true},
		{OrderNew, OrderCancelled, true},
		{OrderNew, OrderShipped, false},
		{OrderNew, OrderDelivered, false},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderDelivered, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderNew, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderNew.IsTerminal())
	assert.False(t, OrderProcessing.IsTerminal())
	assert.False(t, OrderShipped.IsTerminal())
	assert.True(t, OrderDelivered.IsTerminal())
	assert.True(t, OrderCancelled.IsTerminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderNew.Valid())
	assert.True(t, OrderDelivered.Valid())
	assert.False(t, OrderStatus("RETURNED").Valid())
}

func TestOrder_Subtotal(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 50, UnitPrice: 9000, TotalPrice: 450000},
			{Quantity: 2, UnitPrice: 25000, TotalPrice: 50000},
		},
	}

	assert.Equal(t, int64(500000), order.Subtotal())
}
