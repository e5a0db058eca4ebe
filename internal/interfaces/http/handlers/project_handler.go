package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/domain/repositories"
	"s2dio.backend/internal/interfaces/http/response"
	"s2dio.backend/pkg/utils"
)

type ProjectHandler struct {
	repo repositories.ProjectRepository
}

func NewProjectHandler(repo repositories.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

type projectInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	LongDescription string   `json:"longDescription"`
	ImageURL        string   `json:"image"`
	Technologies    []string `json:"technologies"`
	GithubURL       string   `json:"githubUrl"`
	LiveURL         string   `json:"liveUrl"`
	DisplayOrder    int      `json:"order" binding:"required,gt=0"`
	IsActive        *bool    `json:"isActive"`
}

// ListProjects returns projects sorted by display order.
// GET /api/v1/projects[?active=true]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	items, err := h.repo.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListAdminProjects returns all projects for admin management.
// GET /api/v1/admin/projects[?search=term]
func (h *ProjectHandler) ListAdminProjects(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		filtered := make([]*entities.Project, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Title), search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetProject returns one project.
// GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project ID"))
		return
	}

	project, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("project not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// CreateProject creates a project.
// POST /api/v1/admin/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		response.Error(c, domainerrors.BadRequest("title and description are required"))
		return
	}

	project := &entities.Project{
		ID:              utils.GenerateUUIDv7(),
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		LongDescription: input.LongDescription,
		ImageURL:        strings.TrimSpace(input.ImageURL),
		Technologies:    input.Technologies,
		GithubURL:       strings.TrimSpace(input.GithubURL),
		LiveURL:         strings.TrimSpace(input.LiveURL),
		DisplayOrder:    input.DisplayOrder,
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := h.repo.Create(c.Request.Context(), project); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Project created",
		"project": project,
	})
}

// UpdateProject updates a project.
// PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("project not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		response.Error(c, domainerrors.BadRequest("title and description are required"))
		return
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = strings.TrimSpace(input.Description)
	existing.LongDescription = input.LongDescription
	existing.ImageURL = strings.TrimSpace(input.ImageURL)
	existing.Technologies = input.Technologies
	existing.GithubURL = strings.TrimSpace(input.GithubURL)
	existing.LiveURL = strings.TrimSpace(input.LiveURL)
	existing.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("project not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Project updated",
		"project": existing,
	})
}

// DeleteProject soft deletes a project.
// DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project ID"))
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("project not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted"})
}
