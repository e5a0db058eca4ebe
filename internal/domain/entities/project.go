package entities

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown in the projects section.
type Project struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription string     `json:"longDescription,omitempty"`
	ImageURL        string     `json:"image,omitempty"`
	Technologies    []string   `json:"technologies"`
	GithubURL       string     `json:"githubUrl,omitempty"`
	LiveURL         string     `json:"liveUrl,omitempty"`
	DisplayOrder    int        `json:"order"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"-"`
}
