package postgres

import (
	"context"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// quotationRepository implements the repository.QuotationRepository interface.
type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository is the constructor for quotationRepository.
func NewQuotationRepository(db *gorm.DB) repository.QuotationRepository {
	return &quotationRepository{
		db: db,
	}
}

// CreateQuotation persists a new quotation with its items.
func (repo *quotationRepository) CreateQuotation(ctx context.Context, quotation *entity.Quotation) error {
	quotationM := fromQuotationDomain(quotation)

	if err := repo.db.WithContext(ctx).Create(quotationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required quotation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quotation")
	}

	quotation.ID = quotationM.ID
	quotation.CreatedAt = quotationM.CreatedAt
	quotation.UpdatedAt = quotationM.UpdatedAt

	return nil
}

// FindQuotationByID retrieves a quotation with its items.
func (repo *quotationRepository) FindQuotationByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotationM model.QuotationModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&quotationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuotationNotFound
		}

		return nil, errors.Wrap(err, "failed to find quotation by ID")
	}

	return toQuotationDomain(&quotationM), nil
}

// FindQuotationsByCustomer retrieves all quotations for a customer, newest first.
func (repo *quotationRepository) FindQuotationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Quotation, error) {
	var quotationModels []*model.QuotationModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&quotationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quotations by customer")
	}

	quotations := make([]*entity.Quotation, 0, len(quotationModels))
	for _, quotationM := range quotationModels {
		quotations = append(quotations, toQuotationDomain(quotationM))
	}

	return quotations, nil
}

// ListQuotations retrieves quotations, optionally filtered by status, newest first.
func (repo *quotationRepository) ListQuotations(ctx context.Context, status *entity.QuotationStatus) ([]*entity.Quotation, error) {
	query := repo.db.WithContext(ctx).Preload("Items")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var quotationModels []*model.QuotationModel
	if err := query.Order("created_at DESC").Find(&quotationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quotations")
	}

	quotations := make([]*entity.Quotation, 0, len(quotationModels))
	for _, quotationM := range quotationModels {
		quotations = append(quotations, toQuotationDomain(quotationM))
	}

	return quotations, nil
}

// ReplaceItems replaces the full item list of a quotation.
func (repo *quotationRepository) ReplaceItems(ctx context.Context, quotationID uuid.UUID, items []entity.QuotationItem) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotationID).
			Delete(&model.QuotationItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete quotation items")
		}

		if len(items) == 0 {
			return nil
		}

		itemModels := make([]model.QuotationItemModel, 0, len(items))
		for _, item := range items {
			itemModels = append(itemModels, fromQuotationItemDomain(quotationID, item))
		}

		if err := tx.Create(&itemModels).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrQuotationNotFound
			}

			return errors.Wrap(err, "failed to create quotation items")
		}

		return nil
	})
}

// UpdateQuotationStatus moves a quotation from one status to another, guarded
// by the expected current status so concurrent transitions lose cleanly.
func (repo *quotationRepository) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, from, to entity.QuotationStatus, validUntil *time.Time) error {
	updates := map[string]any{"status": string(to)}
	if validUntil != nil {
		updates["valid_until"] = *validUntil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.QuotationModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update quotation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuotationStatusConflict
	}

	return nil
}

// MarkConverted atomically flips an ACCEPTED, unconverted quotation to
// CONVERTED and links the created order.
func (repo *quotationRepository) MarkConverted(ctx context.Context, id, orderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuotationModel{}).
		Where("id = ? AND status = ? AND converted_order_id IS NULL", id, string(entity.QuotationAccepted)).
		Updates(map[string]any{
			"status":             string(entity.QuotationConverted),
			"converted_order_id": orderID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark quotation converted")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuotationConverted
	}

	return nil
}

// --- Mapper Functions ---

// toQuotationDomain converts a GORM QuotationModel to a domain Quotation entity.
func toQuotationDomain(data *model.QuotationModel) *entity.Quotation {
	if data == nil {
		return nil
	}

	items := make([]entity.QuotationItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.QuotationItem{
			ID:          itemM.ID,
			QuotationID: itemM.QuotationID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			SKU:         itemM.SKU,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			LineTotal:   itemM.LineTotal,
		})
	}

	return &entity.Quotation{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Status:           entity.QuotationStatus(data.Status),
		Items:            items,
		ShippingAddress:  data.ShippingAddress,
		Notes:            data.Notes,
		ValidUntil:       data.ValidUntil,
		ConvertedOrderID: data.ConvertedOrderID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromQuotationDomain converts a domain Quotation entity to a GORM QuotationModel.
func fromQuotationDomain(data *entity.Quotation) *model.QuotationModel {
	if data == nil {
		return nil
	}

	items := make([]model.QuotationItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromQuotationItemDomain(data.ID, item))
	}

	return &model.QuotationModel{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Status:           string(data.Status),
		ShippingAddress:  data.ShippingAddress,
		Notes:            data.Notes,
		ValidUntil:       data.ValidUntil,
		ConvertedOrderID: data.ConvertedOrderID,
		Items:            items,
	}
}

// fromQuotationItemDomain converts a domain QuotationItem to a GORM QuotationItemModel.
func fromQuotationItemDomain(quotationID uuid.UUID, data entity.QuotationItem) model.QuotationItemModel {
	return model.QuotationItemModel{
		ID:          data.ID,
		QuotationID: quotationID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		SKU:         data.SKU,
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
		LineTotal:   data.LineTotal,
	}
}
