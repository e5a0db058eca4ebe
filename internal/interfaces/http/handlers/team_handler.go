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

type TeamHandler struct {
	repo repositories.TeamMemberRepository
}

func NewTeamHandler(repo repositories.TeamMemberRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

type teamMemberInput struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"image"`
	LinkedInURL  string `json:"linkedIn"`
	GithubURL    string `json:"github"`
	Email        string `json:"email"`
	DisplayOrder int    `json:"order" binding:"required,gt=0"`
	IsActive     *bool  `json:"isActive"`
}

// ListTeam returns team members sorted by display order.
// GET /api/v1/team[?active=true]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	items, err := h.repo.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListAdminTeam returns all team members for admin management.
// GET /api/v1/admin/team[?search=term]
func (h *TeamHandler) ListAdminTeam(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		filtered := make([]*entities.TeamMember, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), search) ||
				strings.Contains(strings.ToLower(item.Role), search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetTeamMember returns one team member.
// GET /api/v1/team/:id
func (h *TeamHandler) GetTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// CreateTeamMember creates a team member.
// POST /api/v1/admin/team
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var input teamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Role) == "" {
		response.Error(c, domainerrors.BadRequest("name and role are required"))
		return
	}

	member := &entities.TeamMember{
		ID:           utils.GenerateUUIDv7(),
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Bio:          input.Bio,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		LinkedInURL:  strings.TrimSpace(input.LinkedInURL),
		GithubURL:    strings.TrimSpace(input.GithubURL),
		Email:        strings.TrimSpace(input.Email),
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := h.repo.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Team member created",
		"member":  member,
	})
}

// UpdateTeamMember updates a team member.
// PUT /api/v1/admin/team/:id
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input teamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Role) == "" {
		response.Error(c, domainerrors.BadRequest("name and role are required"))
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Role = strings.TrimSpace(input.Role)
	existing.Bio = input.Bio
	existing.ImageURL = strings.TrimSpace(input.ImageURL)
	existing.LinkedInURL = strings.TrimSpace(input.LinkedInURL)
	existing.GithubURL = strings.TrimSpace(input.GithubURL)
	existing.Email = strings.TrimSpace(input.Email)
	existing.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Team member updated",
		"member":  existing,
	})
}

// DeleteTeamMember soft deletes a team member.
// DELETE /api/v1/admin/team/:id
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team member deleted"})
}
