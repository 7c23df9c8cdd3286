package repository

import (
	"context"
	"errors"

	"agridash/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile row yet.
// Callers treat this as a valid initial state, not a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for profile persistence.
// Profiles are singletons per user: reads are maybe-one by owner and writes
// always go through an upsert keyed on the owner id, never a separate create.
type ProfileRepository interface {
	// FindByOwner retrieves the profile of the owner, or ErrProfileNotFound.
	FindByOwner(ctx context.Context, owner uuid.UUID) (*entity.Profile, error)

	// Upsert inserts the profile or, when a row for the owner already exists,
	// updates its form-managed fields (full name, phone, location). The avatar
	// URL is left untouched on conflict; it is managed outside the form.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
