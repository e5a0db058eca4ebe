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

type SectionHandler struct {
	repo repositories.SectionRepository
}

func NewSectionHandler(repo repositories.SectionRepository) *SectionHandler {
	return &SectionHandler{repo: repo}
}

type sectionInput struct {
	Name         string `json:"name" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Subtitle     string `json:"subtitle"`
	Content      string `json:"content"`
	VideoURL     string `json:"videoUrl"`
	DisplayOrder int    `json:"order" binding:"required,gt=0"`
	IsActive     *bool  `json:"isActive"`
}

// ListSections returns sections sorted by display order.
// GET /api/v1/sections[?active=true]
func (h *SectionHandler) ListSections(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	items, err := h.repo.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListAdminSections returns all sections for admin management.
// GET /api/v1/admin/sections[?search=term]
func (h *SectionHandler) ListAdminSections(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		filtered := make([]*entities.Section, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), search) ||
				strings.Contains(strings.ToLower(item.Title), search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetSection returns one section.
// GET /api/v1/sections/:id
func (h *SectionHandler) GetSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid section ID"))
		return
	}

	section, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("section not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, section)
}

// CreateSection creates a section.
// POST /api/v1/admin/sections
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var input sectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" {
		response.Error(c, domainerrors.BadRequest("name and title are required"))
		return
	}

	section := &entities.Section{
		ID:           utils.GenerateUUIDv7(),
		Name:         strings.TrimSpace(input.Name),
		Title:        strings.TrimSpace(input.Title),
		Subtitle:     strings.TrimSpace(input.Subtitle),
		Content:      input.Content,
		VideoURL:     strings.TrimSpace(input.VideoURL),
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if input.IsActive != nil {
		section.IsActive = *input.IsActive
	}

	if err := h.repo.Create(c.Request.Context(), section); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("a section with that name already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Section created",
		"section": section,
	})
}

// UpdateSection updates a section.
// PUT /api/v1/admin/sections/:id
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid section ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("section not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input sectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" {
		response.Error(c, domainerrors.BadRequest("name and title are required"))
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Title = strings.TrimSpace(input.Title)
	existing.Subtitle = strings.TrimSpace(input.Subtitle)
	existing.Content = input.Content
	existing.VideoURL = strings.TrimSpace(input.VideoURL)
	existing.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("a section with that name already exists"))
			return
		}
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("section not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Section updated",
		"section": existing,
	})
}

// DeleteSection soft deletes a section.
// DELETE /api/v1/admin/sections/:id
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid section ID"))
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("section not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Section deleted"})
}
