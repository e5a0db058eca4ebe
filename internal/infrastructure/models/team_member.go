package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Role         string    `gorm:"type:varchar(120);not null"`
	Bio          string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:text"`
	LinkedInURL  string    `gorm:"column:linkedin_url;type:text"`
	GithubURL    string    `gorm:"type:text"`
	Email        string    `gorm:"type:varchar(255)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
