package entities

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering shown in the services section. Icon holds an
// image URL or a symbolic icon name (e.g. "globe").
type Service struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	DisplayOrder int        `json:"order"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}
