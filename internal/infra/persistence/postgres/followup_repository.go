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

// followUpRepository implements the repository.FollowUpRepository interface.
type followUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository is the constructor for followUpRepository.
func NewFollowUpRepository(db *gorm.DB) repository.FollowUpRepository {
	return &followUpRepository{
		db: db,
	}
}

// CreateFollowUp persists a new follow-up task.
func (repo *followUpRepository) CreateFollowUp(ctx context.Context, followUp *entity.FollowUp) error {
	followUpM := fromFollowUpDomain(followUp)

	if err := repo.db.WithContext(ctx).Create(followUpM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid customer, quotation or order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required follow-up information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow-up")
	}

	followUp.ID = followUpM.ID
	followUp.CreatedAt = followUpM.CreatedAt
	followUp.UpdatedAt = followUpM.UpdatedAt

	return nil
}

// FindFollowUpByID retrieves a follow-up by its unique ID.
func (repo *followUpRepository) FindFollowUpByID(ctx context.Context, id uuid.UUID) (*entity.FollowUp, error) {
	var followUpM model.FollowUpModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&followUpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowUpNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow-up by ID")
	}

	return toFollowUpDomain(&followUpM), nil
}

// FindPendingInWindow retrieves PENDING follow-ups scheduled inside [from, to),
// optionally restricted to one owning admin, soonest first.
func (repo *followUpRepository) FindPendingInWindow(ctx context.Context, from, to time.Time, ownerID *uuid.UUID) ([]*entity.FollowUp, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.FollowUpPending)).
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to)
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var followUpModels []*model.FollowUpModel
	if err := query.Order("scheduled_at ASC").Find(&followUpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending follow-ups in window")
	}

	return toFollowUpDomains(followUpModels), nil
}

// FindPendingBefore retrieves PENDING follow-ups scheduled strictly before the
// given instant, optionally restricted to one owning admin, oldest first.
func (repo *followUpRepository) FindPendingBefore(ctx context.Context, before time.Time, ownerID *uuid.UUID) ([]*entity.FollowUp, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.FollowUpPending)).
		Where("scheduled_at < ?", before)
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var followUpModels []*model.FollowUpModel
	if err := query.Order("scheduled_at ASC").Find(&followUpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending follow-ups before instant")
	}

	return toFollowUpDomains(followUpModels), nil
}

// Resolve moves a PENDING follow-up to COMPLETED or CANCELLED, recording
// resolution notes and timestamp. The status guard makes double resolution lose.
func (repo *followUpRepository) Resolve(ctx context.Context, id uuid.UUID, to entity.FollowUpStatus, notes string, resolvedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FollowUpModel{}).
		Where("id = ? AND status = ?", id, string(entity.FollowUpPending)).
		Updates(map[string]any{
			"status":           string(to),
			"resolution_notes": notes,
			"resolved_at":      resolvedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve follow-up")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFollowUpResolved
	}

	return nil
}

// --- Mapper Functions ---

// toFollowUpDomain converts a GORM FollowUpModel to a domain FollowUp entity.
func toFollowUpDomain(data *model.FollowUpModel) *entity.FollowUp {
	if data == nil {
		return nil
	}

	return &entity.FollowUp{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		QuotationID:     data.QuotationID,
		OrderID:         data.OrderID,
		Type:            entity.FollowUpType(data.Type),
		Status:          entity.FollowUpStatus(data.Status),
		ScheduledAt:     data.ScheduledAt,
		Notes:           data.Notes,
		ResolutionNotes: data.ResolutionNotes,
		OwnerID:         data.OwnerID,
		ResolvedAt:      data.ResolvedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toFollowUpDomains(models []*model.FollowUpModel) []*entity.FollowUp {
	followUps := make([]*entity.FollowUp, 0, len(models))
	for _, followUpM := range models {
		followUps = append(followUps, toFollowUpDomain(followUpM))
	}

	return followUps
}

// fromFollowUpDomain converts a domain FollowUp entity to a GORM FollowUpModel.
func fromFollowUpDomain(data *entity.FollowUp) *model.FollowUpModel {
	if data == nil {
		return nil
	}

	return &model.FollowUpModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		QuotationID:     data.QuotationID,
		OrderID:         data.OrderID,
		Type:            string(data.Type),
		Status:          string(data.Status),
		ScheduledAt:     data.ScheduledAt,
		Notes:           data.Notes,
		ResolutionNotes: data.ResolutionNotes,
		OwnerID:         data.OwnerID,
		ResolvedAt:      data.ResolvedAt,
	}
}
