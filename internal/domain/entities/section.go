package entities

import (
	"time"

	"github.com/google/uuid"
)

// Section is a named, orderable block of page content (hero, about, ...).
// Name is unique and is how the public page looks sections up.
type Section struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle,omitempty"`
	Content      string     `json:"content,omitempty"`
	VideoURL     string     `json:"videoUrl,omitempty"`
	DisplayOrder int        `json:"order"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}
