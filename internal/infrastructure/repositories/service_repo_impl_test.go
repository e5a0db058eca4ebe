package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
)

func TestServiceRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createServiceTable(t, db)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	service := &entities.Service{
		ID:           uuid.New(),
		Title:        "Desarrollo Web",
		Description:  "Sitios web modernos y responsivos",
		Icon:         "globe",
		DisplayOrder: 1,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, service))

	byID, err := repo.GetByID(ctx, service.ID)
	require.NoError(t, err)
	require.Equal(t, "globe", byID.Icon)

	service.Icon = "code"
	service.DisplayOrder = 5
	require.NoError(t, repo.Update(ctx, service))

	updated, err := repo.GetByID(ctx, service.ID)
	require.NoError(t, err)
	require.Equal(t, "code", updated.Icon)
	require.Equal(t, 5, updated.DisplayOrder)

	require.NoError(t, repo.Delete(ctx, service.ID))
	_, err = repo.GetByID(ctx, service.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestServiceRepository_ListFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	createServiceTable(t, db)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	seed := []struct {
		title    string
		order    int
		isActive bool
	}{
		{"consultoria", 3, false},
		{"web", 1, true},
		{"mobile", 2, true},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, &entities.Service{
			ID:           uuid.New(),
			Title:        s.title,
			Description:  "desc",
			Icon:         "zap",
			DisplayOrder: s.order,
			IsActive:     s.isActive,
		}))
	}

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "web", active[0].Title)
	require.Equal(t, "mobile", active[1].Title)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestServiceRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createServiceTable(t, db)
	repo := NewServiceRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Service{ID: id, Title: "x", Description: "y", Icon: "z"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, id), domainerrors.ErrNotFound)
}
