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

// preferenceRepository implements the repository.PreferenceRepository interface using GORM.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByOwner retrieves the single preferences row of the owner, if one exists.
func (repo *preferenceRepository) FindByOwner(ctx context.Context, owner uuid.UUID) (*entity.NotificationPreferences, error) {
	var prefsM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", owner).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences by owner")
	}

	return toPreferenceDomain(&prefsM), nil
}

// Create persists a new preferences row. A unique violation on user_id means
// another writer created the row first; callers recover by re-reading.
func (repo *preferenceRepository) Create(ctx context.Context, prefs *entity.NotificationPreferences) error {
	prefsM := fromPreferenceDomain(prefs)

	if err := repo.db.WithContext(ctx).Create(prefsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPreferencesExist
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create preferences")
	}

	prefs.ID = prefsM.ID
	prefs.CreatedAt = prefsM.CreatedAt
	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}

// UpdateField persists a single toggle for the owner. The generated UPDATE
// touches only the named column (plus updated_at).
func (repo *preferenceRepository) UpdateField(ctx context.Context, owner uuid.UUID, field entity.PreferenceField, value bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PreferenceModel{}).
		Where("user_id = ?", owner).
		Update(string(field), value)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update preference field")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPreferencesNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM PreferenceModel to a domain entity.
func toPreferenceDomain(data *model.PreferenceModel) *entity.NotificationPreferences {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreferences{
		ID:                 data.ID,
		OwnerID:            data.UserID,
		EmailNotifications: data.EmailNotifications,
		SMSNotifications:   data.SMSNotifications,
		WeatherAlerts:      data.WeatherAlerts,
		IrrigationAlerts:   data.IrrigationAlerts,
		CropHealthAlerts:   data.CropHealthAlerts,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain entity to a GORM PreferenceModel.
func fromPreferenceDomain(data *entity.NotificationPreferences) *model.PreferenceModel {
	if data == nil {
		return nil
	}

	return &model.PreferenceModel{
		ID:                 data.ID,
		UserID:             data.OwnerID,
		EmailNotifications: data.EmailNotifications,
		SMSNotifications:   data.SMSNotifications,
		WeatherAlerts:      data.WeatherAlerts,
		IrrigationAlerts:   data.IrrigationAlerts,
		CropHealthAlerts:   data.CropHealthAlerts,
	}
}
