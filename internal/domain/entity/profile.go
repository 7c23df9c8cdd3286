package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the account profile of a user. At most one profile exists per
// user; a missing row is a valid initial state, not an error.
type Profile struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the profile, server-assigned.
	OwnerID   uuid.UUID `json:"owner_id"`   // The ID of the owning user, one-to-one.
	FullName  *string   `json:"full_name"`  // Optional display name.
	Phone     *string   `json:"phone"`      // Optional contact phone number.
	Location  *string   `json:"location"`   // Optional free-text location.
	AvatarURL *string   `json:"avatar_url"` // Optional avatar image URL, managed outside the profile form.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
