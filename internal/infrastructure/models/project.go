package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Technologies is stored as a JSON-encoded array of strings.
type Project struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text;not null"`
	LongDescription string    `gorm:"type:text"`
	ImageURL        string    `gorm:"type:text"`
	Technologies    string    `gorm:"type:text;not null;default:'[]'"`
	GithubURL       string    `gorm:"type:text"`
	LiveURL         string    `gorm:"type:text"`
	DisplayOrder    int       `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
