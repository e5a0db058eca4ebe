package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndFinders(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		ID:           uuid.New(),
		Email:        "admin@s2dio.com",
		Name:         "Administrador",
		PasswordHash: "hash_1",
		Role:         entities.UserRoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "admin@s2dio.com", byID.Email)
	require.Equal(t, entities.UserRoleAdmin, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "admin@s2dio.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		ID:           uuid.New(),
		Email:        "admin@s2dio.com",
		Name:         "Administrador",
		PasswordHash: "old_hash",
		Role:         entities.UserRoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new_hash"))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new_hash", got.PasswordHash)

	require.ErrorIs(t, repo.UpdatePassword(ctx, uuid.New(), "x"), domainerrors.ErrNotFound)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@s2dio.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
