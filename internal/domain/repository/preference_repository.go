package repository

import (
	"context"
	"errors"

	"agridash/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification preference persistence.
var (
	// ErrPreferencesNotFound is returned when a user has no preferences row yet.
	ErrPreferencesNotFound = errors.New("notification preferences not found")
	// ErrPreferencesExist is returned when a create collides with a row that
	// another writer inserted first. Callers recover by re-reading.
	ErrPreferencesExist = errors.New("notification preferences already exist")
)

// PreferenceRepository defines the operations for notification preference
// persistence. Exactly one row exists per user; toggles are persisted as
// single-field updates scoped to the owner, never whole-row writes.
type PreferenceRepository interface {
	// FindByOwner retrieves the preferences of the owner, or ErrPreferencesNotFound.
	FindByOwner(ctx context.Context, owner uuid.UUID) (*entity.NotificationPreferences, error)

	// Create persists a new preferences row. Returns ErrPreferencesExist when
	// the owner already has one. The generated id and timestamps are written
	// back onto the entity.
	Create(ctx context.Context, prefs *entity.NotificationPreferences) error

	// UpdateField persists a single toggle for the owner. The payload touches
	// only the named column. Returns ErrPreferencesNotFound when no row exists.
	UpdateField(ctx context.Context, owner uuid.UUID, field entity.PreferenceField, value bool) error
}
