// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FarmModel mirrors the 'farms' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type FarmModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Location  *string   `gorm:"type:varchar(255)"`
	SizeAcres *float64  `gorm:"type:numeric(10,2)"`
	CropTypes datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}
