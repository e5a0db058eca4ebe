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

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	m := r.toModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	service.ID = m.ID
	service.CreatedAt = m.CreatedAt
	service.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	var m models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]*entities.Service, error) {
	query := r.db.WithContext(ctx).Model(&models.Service{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ms []models.Service
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Service, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	updates := map[string]interface{}{
		"title":         service.Title,
		"description":   service.Description,
		"icon":          service.Icon,
		"display_order": service.DisplayOrder,
		"is_active":     service.IsActive,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", service.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) toEntity(m *models.Service) *entities.Service {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Service{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Icon:         m.Icon,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func (r *ServiceRepository) toModel(e *entities.Service) *models.Service {
	return &models.Service{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Icon:         e.Icon,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
