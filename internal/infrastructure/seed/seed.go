package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"s2dio.backend/internal/config"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/domain/repositories"
	"s2dio.backend/pkg/crypto"
	"s2dio.backend/pkg/logger"
	"s2dio.backend/pkg/utils"
)

// Seeder populates the database with the initial admin account and
// default site content. Existing rows are never overwritten, so edits
// made through the admin panel survive restarts.
type Seeder struct {
	userRepo    repositories.UserRepository
	sectionRepo repositories.SectionRepository
	projectRepo repositories.ProjectRepository
	serviceRepo repositories.ServiceRepository
	teamRepo    repositories.TeamMemberRepository
}

// NewSeeder creates a new seeder
func NewSeeder(
	userRepo repositories.UserRepository,
	sectionRepo repositories.SectionRepository,
	projectRepo repositories.ProjectRepository,
	serviceRepo repositories.ServiceRepository,
	teamRepo repositories.TeamMemberRepository,
) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		sectionRepo: sectionRepo,
		projectRepo: projectRepo,
		serviceRepo: serviceRepo,
		teamRepo:    teamRepo,
	}
}

// Run seeds the admin user, the named page sections and the sample
// content collections.
func (s *Seeder) Run(ctx context.Context, cfg *config.SeedConfig) error {
	if err := s.seedAdmin(ctx, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedSections(ctx); err != nil {
		return fmt.Errorf("seed sections: %w", err)
	}
	if err := s.seedProjects(ctx); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := s.seedServices(ctx); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := s.seedTeam(ctx); err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	logger.Info(ctx, "Database seed completed")
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, cfg *config.SeedConfig) error {
	_, err := s.userRepo.GetByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	passwordHash, err := crypto.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        cfg.AdminEmail,
		PasswordHash: passwordHash,
		Name:         "Administrador",
		Role:         entities.UserRoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info(ctx, "Seeded admin user", zap.String("email", cfg.AdminEmail))
	return nil
}

func (s *Seeder) seedSections(ctx context.Context) error {
	for _, section := range defaultSections() {
		_, err := s.sectionRepo.GetByName(ctx, section.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		section.ID = utils.GenerateUUIDv7()
		if err := s.sectionRepo.Create(ctx, section); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProjects(ctx context.Context) error {
	existing, err := s.projectRepo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, project := range sampleProjects() {
		project.ID = utils.GenerateUUIDv7()
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedServices(ctx context.Context) error {
	existing, err := s.serviceRepo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, service := range sampleServices() {
		service.ID = utils.GenerateUUIDv7()
		if err := s.serviceRepo.Create(ctx, service); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTeam(ctx context.Context) error {
	existing, err := s.teamRepo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, member := range sampleTeam() {
		member.ID = utils.GenerateUUIDv7()
		if err := s.teamRepo.Create(ctx, member); err != nil {
			return err
		}
	}
	return nil
}
