package usecase

import (
	"context"

	"agridash/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUsecase manages the notification preferences of the current
// user. Load materializes a default row on first access, and Toggle flips a
// single channel with optimistic local state.
type PreferenceUsecase interface {
	// Load returns the owner's preferences, creating the default row when
	// none exists yet. Concurrent first loads resolve to the same row.
	Load(ctx context.Context, owner uuid.UUID) (*entity.NotificationPreferences, error)

	// Toggle sets one preference field. The in-memory value flips
	// immediately; the store write follows. On write failure the local value
	// either stays flipped or reverts, depending on configuration, and a
	// destructive notice is emitted either way.
	Toggle(ctx context.Context, owner uuid.UUID, field entity.PreferenceField, value bool) (*entity.NotificationPreferences, error)
}
