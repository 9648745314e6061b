package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the UUID primary key shared by most tables.
// The ID is assigned client-side so it is known before the insert returns.
type Base struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
