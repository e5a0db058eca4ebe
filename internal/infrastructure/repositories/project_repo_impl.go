package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/infrastructure/models"
	"s2dio.backend/pkg/logger"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m, err := r.toModel(project)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.ID = m.ID
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) List(ctx context.Context, activeOnly bool) ([]*entities.Project, error) {
	query := r.db.WithContext(ctx).Model(&models.Project{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ms []models.Project
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	technologies, err := encodeTechnologies(project.Technologies)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"title":            project.Title,
		"description":      project.Description,
		"long_description": project.LongDescription,
		"image_url":        project.ImageURL,
		"technologies":     technologies,
		"github_url":       project.GithubURL,
		"live_url":         project.LiveURL,
		"display_order":    project.DisplayOrder,
		"is_active":        project.IsActive,
		"updated_at":       time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	technologies := []string{}
	if m.Technologies != "" {
		// A malformed column leaves the list empty rather than failing the read.
		if err := json.Unmarshal([]byte(m.Technologies), &technologies); err != nil {
			logger.Warn(context.Background(), "Malformed technologies column",
				zap.String("project_id", m.ID.String()),
				zap.Error(err))
			technologies = []string{}
		}
	}

	return &entities.Project{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		LongDescription: m.LongDescription,
		ImageURL:        m.ImageURL,
		Technologies:    technologies,
		GithubURL:       m.GithubURL,
		LiveURL:         m.LiveURL,
		DisplayOrder:    m.DisplayOrder,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

func (r *ProjectRepository) toModel(e *entities.Project) (*models.Project, error) {
	technologies, err := encodeTechnologies(e.Technologies)
	if err != nil {
		return nil, err
	}
	return &models.Project{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		LongDescription: e.LongDescription,
		ImageURL:        e.ImageURL,
		Technologies:    technologies,
		GithubURL:       e.GithubURL,
		LiveURL:         e.LiveURL,
		DisplayOrder:    e.DisplayOrder,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}, nil
}

func encodeTechnologies(technologies []string) (string, error) {
	if technologies == nil {
		technologies = []string{}
	}
	data, err := json.Marshal(technologies)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
