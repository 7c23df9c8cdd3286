package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Farm represents a single agricultural property owned by a user.
// Every optional field is a pointer so that "not provided" persists as NULL
// rather than an empty value.
type Farm struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the farm, server-assigned.
	OwnerID   uuid.UUID `json:"owner_id"`   // The ID of the user who owns this farm. Set at creation, immutable.
	Name      string    `json:"name"`       // Required display name, non-empty after trimming.
	Location  *string   `json:"location"`   // Optional free-text location, e.g. "City, State".
	SizeAcres *float64  `json:"size_acres"` // Optional size in acres, positive when present.
	CropTypes []string  `json:"crop_types"` // Optional ordered list of crop tokens.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// ParseCropTypes splits a comma-separated crop list into trimmed, non-empty
// tokens, preserving order. A blank input yields nil.
func ParseCropTypes(input string) []string {
	parts := strings.Split(input, ",")
	crops := make([]string, 0, len(parts))
	for _, part := range parts {
		if crop := strings.TrimSpace(part); crop != "" {
			crops = append(crops, crop)
		}
	}
	if len(crops) == 0 {
		return nil
	}

	return crops
}

// JoinCropTypes renders a crop list back into its display form.
func JoinCropTypes(crops []string) string {
	return strings.Join(crops, ", ")
}
