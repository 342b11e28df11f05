package postgres

import (
	"context"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid customer or quotation reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByCustomer retrieves all orders for a customer, newest first.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListOrders retrieves orders, optionally filtered by status, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Preload("Items")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus persists the status, tracking number and shipment
// timestamps of the order, guarded by the expected current status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", order.ID, string(from)).
		Updates(map[string]any{
			"status":          string(order.Status),
			"tracking_number": order.TrackingNumber,
			"shipped_at":      order.ShippedAt,
			"delivered_at":    order.DeliveredAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusConflict
	}

	return nil
}

// AppendStatusLog appends one immutable audit row for a status change.
func (repo *orderRepository) AppendStatusLog(ctx context.Context, log *entity.OrderStatusLog) error {
	logM := fromStatusLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to append order status log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// FindStatusLogs retrieves the audit trail of an order, oldest first.
func (repo *orderRepository) FindStatusLogs(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusLog, error) {
	var logModels []*model.OrderStatusLogModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order status logs")
	}

	logs := make([]*entity.OrderStatusLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toStatusLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			SKU:         itemM.SKU,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			TotalPrice:  itemM.TotalPrice,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		QuotationID:     data.QuotationID,
		Status:          entity.OrderStatus(data.Status),
		Items:           items,
		ShippingAddress: data.ShippingAddress,
		TrackingNumber:  data.TrackingNumber,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     data.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		QuotationID:     data.QuotationID,
		Status:          string(data.Status),
		ShippingAddress: data.ShippingAddress,
		TrackingNumber:  data.TrackingNumber,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		Items:           items,
	}
}

// toStatusLogDomain converts a GORM OrderStatusLogModel to a domain OrderStatusLog.
func toStatusLogDomain(data *model.OrderStatusLogModel) *entity.OrderStatusLog {
	if data == nil {
		return nil
	}

	return &entity.OrderStatusLog{
		ID:         data.ID,
		OrderID:    data.OrderID,
		FromStatus: entity.OrderStatus(data.FromStatus),
		ToStatus:   entity.OrderStatus(data.ToStatus),
		Notes:      data.Notes,
		ActorID:    data.ActorID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromStatusLogDomain converts a domain OrderStatusLog to a GORM OrderStatusLogModel.
func fromStatusLogDomain(data *entity.OrderStatusLog) *model.OrderStatusLogModel {
	if data == nil {
		return nil
	}

	return &model.OrderStatusLogModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		FromStatus: string(data.FromStatus),
		ToStatus:   string(data.ToStatus),
		Notes:      data.Notes,
		ActorID:    data.ActorID,
	}
}
