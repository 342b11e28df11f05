package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the fulfilment states of an order.
type OrderStatus string

const (
	OrderNew        OrderStatus = "NEW"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderNew:        {OrderProcessing: true, OrderCancelled: true},
	OrderProcessing: {OrderShipped: true, OrderCancelled: true},
	OrderShipped:    {OrderDelivered: true},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// CanTransitionTo reports whether the status may move to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return orderTransitions[s][target]
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// Valid reports whether the value is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// OrderItem is one fulfilment line, snapshotted from the source quotation.
// Amounts are in minor currency units.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
}

// Order is a binding purchase, usually materialized from an accepted quotation.
// ShippedAt and DeliveredAt are stamped only by the matching transitions.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	QuotationID     *uuid.UUID  `json:"quotation_id,omitempty"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items,omitempty"`
	ShippingAddress string      `json:"shipping_address"`
	TrackingNumber  string      `json:"tracking_number,omitempty"`
	ShippedAt       *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Subtotal sums the line totals of all items.
func (o *Order) Subtotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.TotalPrice
	}

	return total
}

// OrderStatusLog is one append-only audit row recording a status change.
type OrderStatusLog struct {
	ID         uuid.UUID   `json:"id"`
	OrderID    uuid.UUID   `json:"order_id"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status"`
	Notes      string      `json:"notes,omitempty"`
	ActorID    uuid.UUID   `json:"actor_id"`
	CreatedAt  time.Time   `json:"created_at"`
}
