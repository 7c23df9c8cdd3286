package postgres

import (
	"context"

	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/repository"
	"agridash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmRepository implements the repository.FarmRepository interface using GORM.
type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository is the constructor for farmRepository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{
		db: db,
	}
}

// ListByOwner retrieves all farms belonging to the owner, newest first.
func (repo *farmRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.Farm, error) {
	var farmModels []*model.FarmModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&farmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list farms by owner")
	}

	farms := make([]*entity.Farm, 0, len(farmModels))
	for _, farmM := range farmModels {
		farms = append(farms, toFarmDomain(farmM))
	}

	return farms, nil
}

// Create persists a new farm row for its owner.
func (repo *farmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	if err := repo.db.WithContext(ctx).Create(farmM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required farm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farm")
	}

	// Write the generated values back onto the entity.
	farm.ID = farmM.ID
	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

// Update rewrites the mutable fields of a farm, scoped to its owner so a row
// belonging to another user can never be addressed.
func (repo *farmRepository) Update(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	result := repo.db.WithContext(ctx).
		Model(&model.FarmModel{}).
		Where("id = ? AND user_id = ?", farm.ID, farm.OwnerID).
		// Select forces cleared optional fields to be written back as NULL.
		Select("name", "location", "size_acres", "crop_types").
		Updates(farmM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required farm information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// Delete removes a farm by id, scoped to its owner.
func (repo *farmRepository) Delete(ctx context.Context, id, owner uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		Delete(&model.FarmModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFarmDomain converts a GORM FarmModel to a domain Farm entity.
func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	return &entity.Farm{
		ID:        data.ID,
		OwnerID:   data.UserID,
		Name:      data.Name,
		Location:  data.Location,
		SizeAcres: data.SizeAcres,
		CropTypes: data.CropTypes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFarmDomain converts a domain Farm entity to a GORM FarmModel for persistence.
func fromFarmDomain(data *entity.Farm) *model.FarmModel {
	if data == nil {
		return nil
	}

	return &model.FarmModel{
		ID:        data.ID,
		UserID:    data.OwnerID,
		Name:      data.Name,
		Location:  data.Location,
		SizeAcres: data.SizeAcres,
		CropTypes: data.CropTypes,
	}
}
