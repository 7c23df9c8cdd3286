package usecase

import (
	"context"

	"agridash/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase manages the single profile record of the current user.
// A profile may not exist yet; the form prefills from the session identity
// in that case and the first submit creates the record.
type ProfileUsecase interface {
	// Load fetches the owner's profile. A missing record is not an error:
	// the returned profile is nil and the caller sees an empty state.
	// displayName is the session display name used to prefill the form when
	// no record exists yet.
	Load(ctx context.Context, owner uuid.UUID, displayName string) (*entity.Profile, error)

	// OpenForm opens the edit form, prefilled from the stored profile or,
	// when none exists, from the session display name.
	OpenForm(ctx context.Context, owner uuid.UUID, displayName string) (*ProfileForm, error)

	// CloseForm discards the open form.
	CloseForm(owner uuid.UUID)

	// Submit validates and upserts the profile, then returns the refreshed
	// record. Whether a row was inserted or updated is invisible to the
	// caller; the operation is a plain save either way.
	Submit(ctx context.Context, owner uuid.UUID, input ProfileInput) (*entity.Profile, error)
}

// ProfileInput carries the editable profile fields. The avatar is managed
// elsewhere and never part of the form.
type ProfileInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// ProfileForm is the state of the profile dialog.
type ProfileForm struct {
	Exists   bool   `json:"exists"` // Whether a stored record backs the form.
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
