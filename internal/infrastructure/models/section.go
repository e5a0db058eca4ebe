package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Section struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Title        string    `gorm:"type:text;not null"`
	Subtitle     string    `gorm:"type:text"`
	Content      string    `gorm:"type:text"`
	VideoURL     string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;default:0"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
