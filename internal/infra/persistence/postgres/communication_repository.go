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

// communicationRepository implements the repository.CommunicationRepository interface.
type communicationRepository struct {
	db *gorm.DB
}

// NewCommunicationRepository is the constructor for communicationRepository.
func NewCommunicationRepository(db *gorm.DB) repository.CommunicationRepository {
	return &communicationRepository{
		db: db,
	}
}

// CreateCommunication appends one message log entry.
func (repo *communicationRepository) CreateCommunication(ctx context.Context, communication *entity.Communication) error {
	communicationM := fromCommunicationDomain(communication)

	if err := repo.db.WithContext(ctx).Create(communicationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid customer, quotation or order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create communication entry")
	}

	communication.ID = communicationM.ID
	communication.CreatedAt = communicationM.CreatedAt

	return nil
}

// FindCommunicationsByCustomer retrieves the message log of a customer, newest first.
func (repo *communicationRepository) FindCommunicationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Communication, error) {
	var communicationModels []*model.CommunicationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&communicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find communications by customer")
	}

	communications := make([]*entity.Communication, 0, len(communicationModels))
	for _, communicationM := range communicationModels {
		communications = append(communications, toCommunicationDomain(communicationM))
	}

	return communications, nil
}

// --- Mapper Functions ---

// toCommunicationDomain converts a GORM CommunicationModel to a domain Communication entity.
func toCommunicationDomain(data *model.CommunicationModel) *entity.Communication {
	if data == nil {
		return nil
	}

	return &entity.Communication{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		QuotationID:       data.QuotationID,
		OrderID:           data.OrderID,
		Channel:           entity.CommunicationChannel(data.Channel),
		Direction:         entity.CommunicationDirection(data.Direction),
		Content:           data.Content,
		ExternalMessageID: data.ExternalMessageID,
		RecordedBy:        data.RecordedBy,
		CreatedAt:         data.CreatedAt,
	}
}

// fromCommunicationDomain converts a domain Communication entity to a GORM CommunicationModel.
func fromCommunicationDomain(data *entity.Communication) *model.CommunicationModel {
	if data == nil {
		return nil
	}

	return &model.CommunicationModel{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		QuotationID:       data.QuotationID,
		OrderID:           data.OrderID,
		Channel:           string(data.Channel),
		Direction:         string(data.Direction),
		Content:           data.Content,
		ExternalMessageID: data.ExternalMessageID,
		RecordedBy:        data.RecordedBy,
	}
}
