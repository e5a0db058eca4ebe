package usecases

import (
	"context"

	"go.uber.org/zap"
	"s2dio.backend/internal/domain/entities"
	"s2dio.backend/internal/domain/repositories"
	"s2dio.backend/pkg/logger"
)

// Named sections the public page always renders, in display order.
var defaultSections = []entities.Section{
	{
		Name:         "hero",
		Title:        "CONSTRUIMOS EL FUTURO DIGITAL",
		Subtitle:     "SOMOS S2DIO, UN ESTUDIO QUE ROMPE LAS REGLAS DEL DISEÑO WEB",
		Content:      "TRANSFORMAMOS IDEAS EN EXPERIENCIAS DIGITALES BRUTALES QUE IMPACTAN Y DESTRUYEN LO CONVENCIONAL",
		DisplayOrder: 1,
		IsActive:     true,
	},
	{
		Name:         "about",
		Title:        "NOSOTROS",
		Subtitle:     "UN EQUIPO OBSESIONADO CON ROMPER LAS REGLAS",
		Content:      "<p>EN <strong>S2DIO</strong> NO SEGUIMOS TENDENCIAS, LAS CREAMOS. DESARROLLAMOS SOFTWARE QUE DESAFÍA LO ESTABLECIDO.</p><p>DESDE 2020, HEMOS ESTADO DESTRUYENDO LAS EXPECTATIVAS Y RECONSTRUYENDO EL FUTURO DIGITAL.</p>",
		DisplayOrder: 2,
		IsActive:     true,
	},
	{
		Name:         "projects",
		Title:        "NUESTROS PROYECTOS",
		Subtitle:     "TRABAJOS QUE ROMPEN EL INTERNET",
		DisplayOrder: 3,
		IsActive:     true,
	},
	{
		Name:         "services",
		Title:        "QUÉ HACEMOS",
		Subtitle:     "SERVICIOS QUE DESTRUYEN LO CONVENCIONAL",
		DisplayOrder: 4,
		IsActive:     true,
	},
	{
		Name:         "team",
		Title:        "NUESTRO EQUIPO",
		Subtitle:     "DESARROLLADORES BRUTALES EN ACCIÓN",
		DisplayOrder: 5,
		IsActive:     true,
	},
	{
		Name:         "gif",
		Title:        "GIF DEL DÍA",
		Subtitle:     "MOMENTO BRUTAL DIARIO",
		DisplayOrder: 6,
		IsActive:     true,
	},
}

// PageUsecase assembles the public page content.
type PageUsecase struct {
	sectionRepo repositories.SectionRepository
	projectRepo repositories.ProjectRepository
	serviceRepo repositories.ServiceRepository
	teamRepo    repositories.TeamMemberRepository
}

// NewPageUsecase creates a new page usecase
func NewPageUsecase(
	sectionRepo repositories.SectionRepository,
	projectRepo repositories.ProjectRepository,
	serviceRepo repositories.ServiceRepository,
	teamRepo repositories.TeamMemberRepository,
) *PageUsecase {
	return &PageUsecase{
		sectionRepo: sectionRepo,
		projectRepo: projectRepo,
		serviceRepo: serviceRepo,
		teamRepo:    teamRepo,
	}
}

// GetPage fetches all active content and indexes sections by name. When the
// store is unreachable the fixed default content is returned instead, so the
// page keeps its structure with zero live data. Missing named sections are
// filled from the same defaults.
func (u *PageUsecase) GetPage(ctx context.Context) *entities.PageContent {
	sections, err := u.sectionRepo.List(ctx, true)
	if err != nil {
		logger.Error(ctx, "Failed to load page content, serving defaults", zap.Error(err))
		return defaultPage()
	}

	projects, err := u.projectRepo.List(ctx, true)
	if err != nil {
		logger.Error(ctx, "Failed to load page content, serving defaults", zap.Error(err))
		return defaultPage()
	}

	services, err := u.serviceRepo.List(ctx, true)
	if err != nil {
		logger.Error(ctx, "Failed to load page content, serving defaults", zap.Error(err))
		return defaultPage()
	}

	team, err := u.teamRepo.List(ctx, true)
	if err != nil {
		logger.Error(ctx, "Failed to load page content, serving defaults", zap.Error(err))
		return defaultPage()
	}

	sectionMap := make(map[string]*entities.Section, len(sections))
	for _, s := range sections {
		sectionMap[s.Name] = s
	}
	for i := range defaultSections {
		if _, ok := sectionMap[defaultSections[i].Name]; !ok {
			fallback := defaultSections[i]
			sectionMap[fallback.Name] = &fallback
		}
	}

	return &entities.PageContent{
		Sections: sectionMap,
		Projects: projects,
		Services: services,
		Team:     team,
	}
}

func defaultPage() *entities.PageContent {
	sections := make(map[string]*entities.Section, len(defaultSections))
	for i := range defaultSections {
		s := defaultSections[i]
		sections[s.Name] = &s
	}
	return &entities.PageContent{
		Sections: sections,
		Projects: []*entities.Project{},
		Services: []*entities.Service{},
		Team:     []*entities.TeamMember{},
	}
}
