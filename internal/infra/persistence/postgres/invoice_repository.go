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

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// CreateInvoice persists a new invoice with its items. The unique constraint
// on order_id backstops the one-invoice-per-order rule under races.
func (repo *invoiceRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderAlreadyInvoiced
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required invoice information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.ID = invoiceM.ID
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

// FindInvoiceByID retrieves an invoice with its items.
func (repo *invoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// FindInvoiceByOrder retrieves the invoice of an order, if any.
func (repo *invoiceRepository) FindInvoiceByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by order")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// ListInvoices retrieves invoices, optionally filtered by status, newest first.
func (repo *invoiceRepository) ListInvoices(ctx context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error) {
	query := repo.db.WithContext(ctx).Preload("Items")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var invoiceModels []*model.InvoiceModel
	if err := query.Order("created_at DESC").Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices, nil
}

// NextInvoiceSequence atomically increments and returns the per-year invoice
// counter. The upsert with RETURNING makes concurrent callers serialize on
// the year row, so no two invoices can share a number.
func (repo *invoiceRepository) NextInvoiceSequence(ctx context.Context, year int) (int64, error) {
	var next int64

	err := repo.db.WithContext(ctx).Raw(`
		INSERT INTO invoice_sequences (year, last_value)
		VALUES (?, 1)
		ON CONFLICT (year)
		DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`, year).
		Scan(&next).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to advance invoice sequence")
	}

	return next, nil
}

// UpdateInvoiceStatus moves an invoice from one status to another, guarded by
// the expected current status, recording payment fields when provided.
func (repo *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, from, to entity.InvoiceStatus, paidAt *time.Time, paymentMethod, paymentNotes string) error {
	updates := map[string]any{"status": string(to)}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	if paymentNotes != "" {
		updates["payment_notes"] = paymentNotes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invoice status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceStatusConflict
	}

	return nil
}

// CreateTaxInvoice persists the PPN tax invoice for an invoice.
func (repo *invoiceRepository) CreateTaxInvoice(ctx context.Context, taxInvoice *entity.TaxInvoice) error {
	taxInvoiceM := fromTaxInvoiceDomain(taxInvoice)

	if err := repo.db.WithContext(ctx).Create(taxInvoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTaxInvoiceExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvoiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tax invoice")
	}

	taxInvoice.ID = taxInvoiceM.ID

	return nil
}

// FindTaxInvoiceByInvoice retrieves the tax invoice of an invoice, if any.
func (repo *invoiceRepository) FindTaxInvoiceByInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.TaxInvoice, error) {
	var taxInvoiceM model.TaxInvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		First(&taxInvoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaxInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find tax invoice by invoice")
	}

	return toTaxInvoiceDomain(&taxInvoiceM), nil
}

// --- Mapper Functions ---

// toInvoiceDomain converts a GORM InvoiceModel to a domain Invoice entity.
func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	items := make([]entity.InvoiceItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.InvoiceItem{
			ID:          itemM.ID,
			InvoiceID:   itemM.InvoiceID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			TotalPrice:  itemM.TotalPrice,
		})
	}

	return &entity.Invoice{
		ID:            data.ID,
		OrderID:       data.OrderID,
		InvoiceNumber: data.InvoiceNumber,
		Status:        entity.InvoiceStatus(data.Status),
		Subtotal:      data.Subtotal,
		TaxAmount:     data.TaxAmount,
		TotalAmount:   data.TotalAmount,
		DueDate:       data.DueDate,
		PaidAt:        data.PaidAt,
		PaymentMethod: data.PaymentMethod,
		PaymentNotes:  data.PaymentNotes,
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromInvoiceDomain converts a domain Invoice entity to a GORM InvoiceModel.
func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	if data == nil {
		return nil
	}

	items := make([]model.InvoiceItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.InvoiceItemModel{
			ID:          item.ID,
			InvoiceID:   data.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return &model.InvoiceModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		InvoiceNumber: data.InvoiceNumber,
		Status:        string(data.Status),
		Subtotal:      data.Subtotal,
		TaxAmount:     data.TaxAmount,
		TotalAmount:   data.TotalAmount,
		DueDate:       data.DueDate,
		PaidAt:        data.PaidAt,
		PaymentMethod: data.PaymentMethod,
		PaymentNotes:  data.PaymentNotes,
		Items:         items,
	}
}

// toTaxInvoiceDomain converts a GORM TaxInvoiceModel to a domain TaxInvoice entity.
func toTaxInvoiceDomain(data *model.TaxInvoiceModel) *entity.TaxInvoice {
	if data == nil {
		return nil
	}

	return &entity.TaxInvoice{
		ID:           data.ID,
		InvoiceID:    data.InvoiceID,
		CompanyName:  data.CompanyName,
		CompanyTaxID: data.CompanyTaxID,
		PPNRate:      data.PPNRate,
		PPNAmount:    data.PPNAmount,
		TotalWithPPN: data.TotalWithPPN,
		IssuedAt:     data.IssuedAt,
		IssuedBy:     data.IssuedBy,
	}
}

// fromTaxInvoiceDomain converts a domain TaxInvoice entity to a GORM TaxInvoiceModel.
func fromTaxInvoiceDomain(data *entity.TaxInvoice) *model.TaxInvoiceModel {
	if data == nil {
		return nil
	}

	return &model.TaxInvoiceModel{
		ID:           data.ID,
		InvoiceID:    data.InvoiceID,
		CompanyName:  data.CompanyName,
		CompanyTaxID: data.CompanyTaxID,
		PPNRate:      data.PPNRate,
		PPNAmount:    data.PPNAmount,
		TotalWithPPN: data.TotalWithPPN,
		IssuedAt:     data.IssuedAt,
		IssuedBy:     data.IssuedBy,
	}
}
