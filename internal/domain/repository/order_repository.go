package repository

import (
	"context"

	"glovia/internal/domain/entity"
	"glovia/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when a guarded status update matched
	// no row because the stored status differs from the expected one.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves all orders for a customer, newest first.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListOrders retrieves orders, optionally filtered by status, newest first.
	ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)

	// UpdateOrderStatus persists the status, tracking number and shipment
	// timestamps of the order, guarded by the expected current status.
	// Returns ErrOrderStatusConflict when the stored status no longer matches.
	UpdateOrderStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error

	// AppendStatusLog appends one immutable audit row for a status change.
	AppendStatusLog(ctx context.Context, log *entity.OrderStatusLog) error

	// FindStatusLogs retrieves the audit trail of an order, oldest first.
	FindStatusLogs(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusLog, error)
}
