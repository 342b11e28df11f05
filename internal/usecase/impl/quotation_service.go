package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"glovia/config"
	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/domain/service"
	"glovia/internal/usecase"
	"glovia/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type quotationService struct {
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
	txManager     repository.TransactionManager
	notifier      service.NotificationSender
	cfg           *config.Config
	logger        *slog.Logger
	now           func() time.Time
}

// NewQuotationService creates a new quotation service instance
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	productRepo repository.ProductRepository,
	txManager repository.TransactionManager,
	notifier service.NotificationSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.QuotationUsecase {
	return &quotationService{
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		txManager:     txManager,
		notifier:      notifier,
		cfg:           cfg,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateQuotation creates a DRAFT quotation with price snapshots
func (s *quotationService) CreateQuotation(ctx context.Context, customerID uuid.UUID, input usecase.CreateQuotationInput) (*entity.Quotation, error) {
	quotationID := uuid.New()

	items, err := s.resolveItems(ctx, quotationID, input.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	quotation := &entity.Quotation{
		ID:              quotationID,
		CustomerID:      customerID,
		Status:          entity.QuotationDraft,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.quotationRepo.CreateQuotation(ctx, quotation); err != nil {
		return nil, errors.Wrap(err, "failed to create quotation")
	}

	return quotation, nil
}

// UpdateItems replaces the item list of a customer's DRAFT quotation
func (s *quotationService) UpdateItems(ctx context.Context, customerID, quotationID uuid.UUID, itemInputs []usecase.QuotationItemInput) (*entity.Quotation, error) {
	quotation, err := s.GetCustomerQuotation(ctx, customerID, quotationID)
	if err != nil {
		return nil, err
	}

	if quotation.Status != entity.QuotationDraft {
		return nil, domainerrors.ErrPreconditionFailed.WithDetails("only DRAFT quotations can be edited")
	}
	if len(itemInputs) == 0 {
		return nil, domainerrors.ErrValidation.WithDetails("at least one item is required")
	}

	items, err := s.resolveItems(ctx, quotationID, itemInputs)
	if err != nil {
		return nil, err
	}

	if err := s.quotationRepo.ReplaceItems(ctx, quotationID, items); err != nil {
		return nil, errors.Wrap(err, "failed to replace quotation items")
	}

	quotation.Items = items
	quotation.UpdatedAt = s.now()

	return quotation, nil
}

// GetCustomerQuotation retrieves one quotation owned by the customer
func (s *quotationService) GetCustomerQuotation(ctx context.Context, customerID, quotationID uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.GetQuotation(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if quotation.CustomerID != customerID {
		// Hide other customers' quotations rather than acknowledging them.
		return nil, domainerrors.ErrQuotationNotFound
	}

	return quotation, nil
}

// ListCustomerQuotations retrieves all quotations of a customer, newest first
func (s *quotationService) ListCustomerQuotations(ctx context.Context, customerID uuid.UUID) ([]*entity.Quotation, error) {
	quotations, err := s.quotationRepo.FindQuotationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quotations by customer")
	}

	return quotations, nil
}

// Submit moves a customer's DRAFT quotation to SENT and stamps its validity window
func (s *quotationService) Submit(ctx context.Context, customerID, quotationID uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.GetCustomerQuotation(ctx, customerID, quotationID)
	if err != nil {
		return nil, err
	}

	if !quotation.Status.CanTransitionTo(entity.QuotationSent) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(transitionDetail(string(quotation.Status), string(entity.QuotationSent)))
	}
	if len(quotation.Items) == 0 {
		return nil, domainerrors.ErrPreconditionFailed.WithDetails("quotation has no items")
	}

	now := s.now()
	validUntil := now.AddDate(0, 0, s.cfg.Quotation.ValidityDays)

	if err := s.quotationRepo.UpdateQuotationStatus(ctx, quotationID, quotation.Status, entity.QuotationSent, &validUntil); err != nil {
		if errors.Is(err, repository.ErrQuotationStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to submit quotation")
	}

	quotation.Status = entity.QuotationSent
	quotation.ValidUntil = &validUntil
	quotation.UpdatedAt = now

	s.notifySubmitted(ctx, quotation)

	return quotation, nil
}

// notifySubmitted alerts the back-office number about a new submission.
// Fire-and-forget: failures are logged, the committed submission stands.
func (s *quotationService) notifySubmitted(ctx context.Context, quotation *entity.Quotation) {
	if s.cfg.Notification == nil || s.cfg.Notification.AdminPhone == "" {
		return
	}

	params := map[string]string{
		"quotation_id": quotation.ID.String(),
		"subtotal":     util.FormatRupiah(quotation.Subtotal()),
	}
	if err := s.notifier.Send(ctx, entity.ChannelWhatsApp, s.cfg.Notification.AdminPhone, "quotation_submitted", params); err != nil {
		s.logger.Warn("failed to send quotation submission alert",
			slog.String("quotationID", quotation.ID.String()),
			slog.Any("error", err))
	}
}

// GetQuotation retrieves one quotation (admin)
func (s *quotationService) GetQuotation(ctx context.Context, quotationID uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			return nil, domainerrors.ErrQuotationNotFound
		}

		return nil, errors.Wrap(err, "failed to find quotation by ID")
	}

	return quotation, nil
}

// ListQuotations retrieves quotations, optionally filtered by status (admin)
func (s *quotationService) ListQuotations(ctx context.Context, status *entity.QuotationStatus) ([]*entity.Quotation, error) {
	if status != nil && !status.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown quotation status")
	}

	quotations, err := s.quotationRepo.ListQuotations(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quotations")
	}

	return quotations, nil
}

// Decide moves a quotation to ACCEPTED, REJECTED or EXPIRED (admin)
func (s *quotationService) Decide(ctx context.Context, quotationID uuid.UUID, target entity.QuotationStatus, actorID uuid.UUID) (*entity.Quotation, error) {
	switch target {
	case entity.QuotationAccepted, entity.QuotationRejected, entity.QuotationExpired:
	default:
		return nil, domainerrors.ErrValidation.WithDetails("decision must be ACCEPTED, REJECTED or EXPIRED")
	}

	quotation, err := s.GetQuotation(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if !quotation.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(transitionDetail(string(quotation.Status), string(target)))
	}

	if err := s.quotationRepo.UpdateQuotationStatus(ctx, quotationID, quotation.Status, target, nil); err != nil {
		if errors.Is(err, repository.ErrQuotationStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to update quotation status")
	}

	s.logger.Info("quotation decided",
		slog.String("quotationID", quotationID.String()),
		slog.String("decision", string(target)),
		slog.String("actorID", actorID.String()))

	quotation.Status = target
	quotation.UpdatedAt = s.now()

	return quotation, nil
}

// ConvertToOrder materializes an order from an ACCEPTED quotation in one atomic transaction
func (s *quotationService) ConvertToOrder(ctx context.Context, quotationID, actorID uuid.UUID) (uuid.UUID, error) {
	var orderID uuid.UUID

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quotationRepo := repoFactory.NewQuotationRepository()
		orderRepo := repoFactory.NewOrderRepository()

		quotation, err := quotationRepo.FindQuotationByID(ctx, quotationID)
		if err != nil {
			if errors.Is(err, repository.ErrQuotationNotFound) {
				return domainerrors.ErrQuotationNotFound
			}

			return errors.Wrap(err, "failed to find quotation by ID")
		}

		if quotation.Status == entity.QuotationConverted || quotation.ConvertedOrderID != nil {
			return domainerrors.ErrAlreadyConverted
		}
		if !quotation.Status.CanTransitionTo(entity.QuotationConverted) {
			return domainerrors.ErrInvalidTransition.WithDetails(transitionDetail(string(quotation.Status), string(entity.QuotationConverted)))
		}

		now := s.now()
		order := &entity.Order{
			ID:              uuid.New(),
			CustomerID:      quotation.CustomerID,
			QuotationID:     &quotation.ID,
			Status:          entity.OrderNew,
			Items:           orderItemsFromQuotation(quotation.Items),
			ShippingAddress: quotation.ShippingAddress,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order from quotation")
		}

		if err := quotationRepo.MarkConverted(ctx, quotationID, order.ID); err != nil {
			if errors.Is(err, repository.ErrQuotationConverted) {
				return domainerrors.ErrAlreadyConverted
			}

			return errors.Wrap(err, "failed to mark quotation converted")
		}

		orderID = order.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("quotation converted to order",
		slog.String("quotationID", quotationID.String()),
		slog.String("orderID", orderID.String()),
		slog.String("actorID", actorID.String()))

	return orderID, nil
}

// resolveItems snapshots tier-resolved unit prices for the requested lines.
func (s *quotationService) resolveItems(ctx context.Context, quotationID uuid.UUID, inputs []usecase.QuotationItemInput) ([]entity.QuotationItem, error) {
	items := make([]entity.QuotationItem, 0, len(inputs))

	for _, input := range inputs {
		if input.Quantity < 1 {
			return nil, domainerrors.ErrValidation.WithDetails("item quantity must be at least 1")
		}

		product, err := s.productRepo.FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(input.ProductID.String())
			}

			return nil, errors.Wrap(err, "failed to find product by ID")
		}
		if !product.IsActive {
			return nil, domainerrors.ErrValidation.WithDetails(fmt.Sprintf("product %s is not available", product.SKU))
		}

		unitPrice := product.UnitPriceFor(input.Quantity)
		items = append(items, entity.QuotationItem{
			ID:          uuid.New(),
			QuotationID: quotationID,
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    input.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   unitPrice * int64(input.Quantity),
		})
	}

	return items, nil
}

func orderItemsFromQuotation(items []entity.QuotationItem) []entity.OrderItem {
	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, entity.OrderItem{
			ID:          uuid.New(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.LineTotal,
		})
	}

	return orderItems
}

func transitionDetail(from, to string) string {
	return fmt.Sprintf("%s -> %s", from, to)
}
