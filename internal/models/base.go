package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxNameLength matches the varchar(255) name columns of folders and files.
const MaxNameLength = 255

type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a random id when the caller did not supply one.
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
