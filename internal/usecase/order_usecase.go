package usecase

import (
	"context"

	"glovia/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateOrderStatusInput carries a requested order status transition.
type UpdateOrderStatusInput struct {
	Target         entity.OrderStatus `json:"target" validate:"required"`
	TrackingNumber string             `json:"tracking_number"`
	Notes          string             `json:"notes"`
}

// OrderUsecase defines order tracking and fulfilment status management.
type OrderUsecase interface {
	// GetOrder retrieves one order with its items (admin).
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// GetCustomerOrder retrieves one order owned by the customer.
	GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// ListCustomerOrders retrieves all orders of a customer, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListOrders retrieves orders, optionally filtered by status (admin).
	ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)

	// UpdateStatus applies a validated status transition, stamps shipment
	// timestamps and appends an audit log row in the same transaction.
	// SHIPPED requires a tracking number.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, input UpdateOrderStatusInput) (*entity.Order, error)

	// GetStatusLog retrieves the audit trail of an order, oldest first.
	GetStatusLog(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusLog, error)
}
