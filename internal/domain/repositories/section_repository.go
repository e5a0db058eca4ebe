package repositories

import (
	"context"

	"github.com/google/uuid"
	"s2dio.backend/internal/domain/entities"
)

type SectionRepository interface {
	Create(ctx context.Context, section *entities.Section) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Section, error)
	GetByName(ctx context.Context, name string) (*entities.Section, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.Section, error)
	Update(ctx context.Context, section *entities.Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}
