package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"s2dio.backend/internal/domain/entities"
)

type stubSectionRepo struct {
	sections []*entities.Section
	listErr  error
}

func (s *stubSectionRepo) Create(ctx context.Context, section *entities.Section) error { return nil }
func (s *stubSectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Section, error) {
	return nil, nil
}
func (s *stubSectionRepo) GetByName(ctx context.Context, name string) (*entities.Section, error) {
	return nil, nil
}
func (s *stubSectionRepo) List(ctx context.Context, activeOnly bool) ([]*entities.Section, error) {
	return s.sections, s.listErr
}
func (s *stubSectionRepo) Update(ctx context.Context, section *entities.Section) error { return nil }
func (s *stubSectionRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type stubProjectRepo struct {
	projects []*entities.Project
	listErr  error
}

func (s *stubProjectRepo) Create(ctx context.Context, project *entities.Project) error { return nil }
func (s *stubProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	return nil, nil
}
func (s *stubProjectRepo) List(ctx context.Context, activeOnly bool) ([]*entities.Project, error) {
	return s.projects, s.listErr
}
func (s *stubProjectRepo) Update(ctx context.Context, project *entities.Project) error { return nil }
func (s *stubProjectRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type stubServiceRepo struct {
	services []*entities.Service
	listErr  error
}

func (s *stubServiceRepo) Create(ctx context.Context, service *entities.Service) error { return nil }
func (s *stubServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	return nil, nil
}
func (s *stubServiceRepo) List(ctx context.Context, activeOnly bool) ([]*entities.Service, error) {
	return s.services, s.listErr
}
func (s *stubServiceRepo) Update(ctx context.Context, service *entities.Service) error { return nil }
func (s *stubServiceRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type stubTeamRepo struct {
	members []*entities.TeamMember
	listErr error
}

func (s *stubTeamRepo) Create(ctx context.Context, member *entities.TeamMember) error { return nil }
func (s *stubTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	return nil, nil
}
func (s *stubTeamRepo) List(ctx context.Context, activeOnly bool) ([]*entities.TeamMember, error) {
	return s.members, s.listErr
}
func (s *stubTeamRepo) Update(ctx context.Context, member *entities.TeamMember) error { return nil }
func (s *stubTeamRepo) Delete(ctx context.Context, id uuid.UUID) error                { return nil }

func TestGetPage_AssemblesStoredContent(t *testing.T) {
	hero := &entities.Section{ID: uuid.New(), Name: "hero", Title: "Custom Hero", DisplayOrder: 1, IsActive: true}
	project := &entities.Project{ID: uuid.New(), Title: "E-commerce", IsActive: true}
	service := &entities.Service{ID: uuid.New(), Title: "Desarrollo Web", Icon: "globe", IsActive: true}
	member := &entities.TeamMember{ID: uuid.New(), Name: "Alex", Role: "dev", IsActive: true}

	u := NewPageUsecase(
		&stubSectionRepo{sections: []*entities.Section{hero}},
		&stubProjectRepo{projects: []*entities.Project{project}},
		&stubServiceRepo{services: []*entities.Service{service}},
		&stubTeamRepo{members: []*entities.TeamMember{member}},
	)

	page := u.GetPage(context.Background())
	require.Equal(t, "Custom Hero", page.Sections["hero"].Title)
	require.Len(t, page.Projects, 1)
	require.Len(t, page.Services, 1)
	require.Len(t, page.Team, 1)

	// Named sections with no stored row are filled from the defaults.
	require.Contains(t, page.Sections, "about")
	require.Contains(t, page.Sections, "gif")
	require.Equal(t, "NOSOTROS", page.Sections["about"].Title)
}

func TestGetPage_ServesDefaultsOnStoreFailure(t *testing.T) {
	u := NewPageUsecase(
		&stubSectionRepo{listErr: errors.New("db down")},
		&stubProjectRepo{},
		&stubServiceRepo{},
		&stubTeamRepo{},
	)

	page := u.GetPage(context.Background())
	require.Len(t, page.Sections, len(defaultSections))
	require.Equal(t, "CONSTRUIMOS EL FUTURO DIGITAL", page.Sections["hero"].Title)
	require.NotNil(t, page.Projects)
	require.Empty(t, page.Projects)
	require.Empty(t, page.Services)
	require.Empty(t, page.Team)
}

func TestGetPage_ServesDefaultsWhenAnyCollectionFails(t *testing.T) {
	u := NewPageUsecase(
		&stubSectionRepo{sections: []*entities.Section{{ID: uuid.New(), Name: "hero", Title: "Custom", IsActive: true}}},
		&stubProjectRepo{},
		&stubServiceRepo{},
		&stubTeamRepo{listErr: errors.New("db down")},
	)

	page := u.GetPage(context.Background())
	require.Equal(t, "CONSTRUIMOS EL FUTURO DIGITAL", page.Sections["hero"].Title)
}
