package impl

import (
	"context"
	"log/slog"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/domain/service"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
	notifier     service.NotificationSender
	logger       *slog.Logger
	now          func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	txManager repository.TransactionManager,
	notifier service.NotificationSender,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// GetOrder retrieves one order with its items (admin)
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// GetCustomerOrder retrieves one order owned by the customer
func (s *orderService) GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != customerID {
		// Hide other customers' orders rather than acknowledging them.
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListCustomerOrders retrieves all orders of a customer, newest first
func (s *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return orders, nil
}

// ListOrders retrieves orders, optionally filtered by status (admin)
func (s *orderService) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	if status != nil && !status.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown order status")
	}

	orders, err := s.orderRepo.ListOrders(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus applies a validated status transition, stamps shipment timestamps
// and appends an audit log row in the same transaction.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Target.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown order status")
	}

	var updated *entity.Order

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order by ID")
		}

		from := order.Status
		if !from.CanTransitionTo(input.Target) {
			return domainerrors.ErrInvalidTransition.WithDetails(transitionDetail(string(from), string(input.Target)))
		}

		now := s.now()
		switch input.Target {
		case entity.OrderShipped:
			if input.TrackingNumber != "" {
				order.TrackingNumber = input.TrackingNumber
			}
			if order.TrackingNumber == "" {
				return domainerrors.ErrPreconditionFailed.WithDetails("tracking number is required to mark an order SHIPPED")
			}
			order.ShippedAt = &now
		case entity.OrderDelivered:
			order.DeliveredAt = &now
		}

		order.Status = input.Target
		order.UpdatedAt = now

		if err := orderRepo.UpdateOrderStatus(ctx, order, from); err != nil {
			if errors.Is(err, repository.ErrOrderStatusConflict) {
				return domainerrors.ErrInvalidTransition
			}

			return errors.Wrap(err, "failed to update order status")
		}

		statusLog := &entity.OrderStatusLog{
			ID:         uuid.New(),
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   input.Target,
			Notes:      input.Notes,
			ActorID:    actorID,
			CreatedAt:  now,
		}
		if err := orderRepo.AppendStatusLog(ctx, statusLog); err != nil {
			return errors.Wrap(err, "failed to append order status log")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == entity.OrderShipped {
		s.notifyShipped(ctx, updated)
	}

	return updated, nil
}

// GetStatusLog retrieves the audit trail of an order, oldest first
func (s *orderService) GetStatusLog(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusLog, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	logs, err := s.orderRepo.FindStatusLogs(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order status logs")
	}

	return logs, nil
}

// notifyShipped sends the tracking number to the customer. Delivery is
// fire-and-forget: failures are logged, the committed transition stands.
func (s *orderService) notifyShipped(ctx context.Context, order *entity.Order) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("skipping shipment notification, customer lookup failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err))

		return
	}

	params := map[string]string{
		"customer_name":   customer.Name,
		"tracking_number": order.TrackingNumber,
	}
	if err := s.notifier.Send(ctx, entity.ChannelWhatsApp, customer.Phone, "order_shipped", params); err != nil {
		s.logger.Warn("failed to send shipment notification",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err))
	}
}
