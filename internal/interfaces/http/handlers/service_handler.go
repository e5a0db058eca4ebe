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

type ServiceHandler struct {
	repo repositories.ServiceRepository
}

func NewServiceHandler(repo repositories.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

type serviceInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Icon         string `json:"icon" binding:"required"`
	DisplayOrder int    `json:"order" binding:"required,gt=0"`
	IsActive     *bool  `json:"isActive"`
}

// ListServices returns services sorted by display order.
// GET /api/v1/services[?active=true]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	items, err := h.repo.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListAdminServices returns all services for admin management.
// GET /api/v1/admin/services[?search=term]
func (h *ServiceHandler) ListAdminServices(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		filtered := make([]*entities.Service, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Title), search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetService returns one service.
// GET /api/v1/services/:id
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service ID"))
		return
	}

	service, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("service not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// CreateService creates a service.
// POST /api/v1/admin/services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var input serviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.Icon) == "" {
		response.Error(c, domainerrors.BadRequest("title, description, and icon are required"))
		return
	}

	service := &entities.Service{
		ID:           utils.GenerateUUIDv7(),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Icon:         strings.TrimSpace(input.Icon),
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := h.repo.Create(c.Request.Context(), service); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Service created",
		"service": service,
	})
}

// UpdateService updates a service.
// PUT /api/v1/admin/services/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("service not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input serviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.Icon) == "" {
		response.Error(c, domainerrors.BadRequest("title, description, and icon are required"))
		return
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = strings.TrimSpace(input.Description)
	existing.Icon = strings.TrimSpace(input.Icon)
	existing.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("service not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Service updated",
		"service": existing,
	})
}

// DeleteService soft deletes a service.
// DELETE /api/v1/admin/services/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service ID"))
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("service not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service deleted"})
}
