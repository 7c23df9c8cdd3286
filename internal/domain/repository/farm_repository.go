// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agridash/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFarmNotFound is a domain-specific error returned when a farm is not found
// among the rows owned by the requesting user.
var ErrFarmNotFound = errors.New("farm not found")

// FarmRepository defines the standard operations for farm persistence.
// Every operation is scoped to an owner id; the store enforces row-level
// ownership, and callers never address rows of another user.
type FarmRepository interface {
	// ListByOwner retrieves all farms belonging to the owner, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.Farm, error)

	// Create persists a new farm. The generated id and timestamps are written
	// back onto the entity.
	Create(ctx context.Context, farm *entity.Farm) error

	// Update rewrites the mutable fields of an existing farm identified by its
	// id and owner. Returns ErrFarmNotFound when no such row exists.
	Update(ctx context.Context, farm *entity.Farm) error

	// Delete removes a farm by id and owner. Returns ErrFarmNotFound when no
	// such row exists.
	Delete(ctx context.Context, id, owner uuid.UUID) error
}
