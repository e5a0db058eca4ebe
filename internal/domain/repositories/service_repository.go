package repositories

import (
	"context"

	"github.com/google/uuid"
	"s2dio.backend/internal/domain/entities"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.Service, error)
	Update(ctx context.Context, service *entities.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}
