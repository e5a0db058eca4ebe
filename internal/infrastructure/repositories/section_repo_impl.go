package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/infrastructure/models"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Create(ctx context.Context, section *entities.Section) error {
	taken, err := r.nameTaken(ctx, section.Name, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.ErrAlreadyExists
	}

	m := r.toModel(section)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	section.ID = m.ID
	section.CreatedAt = m.CreatedAt
	section.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Section, error) {
	var m models.Section
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *SectionRepository) GetByName(ctx context.Context, name string) (*entities.Section, error) {
	var m models.Section
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *SectionRepository) List(ctx context.Context, activeOnly bool) ([]*entities.Section, error) {
	query := r.db.WithContext(ctx).Model(&models.Section{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ms []models.Section
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Section, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *SectionRepository) Update(ctx context.Context, section *entities.Section) error {
	taken, err := r.nameTaken(ctx, section.Name, section.ID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.ErrAlreadyExists
	}

	updates := map[string]interface{}{
		"name":          section.Name,
		"title":         section.Title,
		"subtitle":      section.Subtitle,
		"content":       section.Content,
		"video_url":     section.VideoURL,
		"display_order": section.DisplayOrder,
		"is_active":     section.IsActive,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Section{}).
		Where("id = ?", section.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the row for good. Name carries a unique index, so a
// soft delete would keep the name reserved forever.
func (r *SectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// isUniqueViolation matches unique-index violations across the postgres
// and sqlite drivers. Backstop behind nameTaken for concurrent creates.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// nameTaken reports whether another section already uses the given name.
// excludeID skips the row being updated.
func (r *SectionRepository) nameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Section{}).Where("name = ?", strings.TrimSpace(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SectionRepository) toEntity(m *models.Section) *entities.Section {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Section{
		ID:           m.ID,
		Name:         m.Name,
		Title:        m.Title,
		Subtitle:     m.Subtitle,
		Content:      m.Content,
		VideoURL:     m.VideoURL,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func (r *SectionRepository) toModel(e *entities.Section) *models.Section {
	return &models.Section{
		ID:           e.ID,
		Name:         e.Name,
		Title:        e.Title,
		Subtitle:     e.Subtitle,
		Content:      e.Content,
		VideoURL:     e.VideoURL,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
