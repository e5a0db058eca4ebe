package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person shown in the team section.
type TeamMember struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Bio          string     `json:"bio,omitempty"`
	ImageURL     string     `json:"image,omitempty"`
	LinkedInURL  string     `json:"linkedIn,omitempty"`
	GithubURL    string     `json:"github,omitempty"`
	Email        string     `json:"email,omitempty"`
	DisplayOrder int        `json:"order"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}
