package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/infrastructure/models"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	m := r.toModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamMemberRepository) List(ctx context.Context, activeOnly bool) ([]*entities.TeamMember, error) {
	query := r.db.WithContext(ctx).Model(&models.TeamMember{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ms []models.TeamMember
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	updates := map[string]interface{}{
		"name":          member.Name,
		"role":          member.Role,
		"bio":           member.Bio,
		"image_url":     member.ImageURL,
		"linkedin_url":  member.LinkedInURL,
		"github_url":    member.GithubURL,
		"email":         member.Email,
		"display_order": member.DisplayOrder,
		"is_active":     member.IsActive,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) toEntity(m *models.TeamMember) *entities.TeamMember {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.TeamMember{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Bio:          m.Bio,
		ImageURL:     m.ImageURL,
		LinkedInURL:  m.LinkedInURL,
		GithubURL:    m.GithubURL,
		Email:        m.Email,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func (r *TeamMemberRepository) toModel(e *entities.TeamMember) *models.TeamMember {
	return &models.TeamMember{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Bio:          e.Bio,
		ImageURL:     e.ImageURL,
		LinkedInURL:  e.LinkedInURL,
		GithubURL:    e.GithubURL,
		Email:        e.Email,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
