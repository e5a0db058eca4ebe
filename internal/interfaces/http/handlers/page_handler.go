package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"s2dio.backend/internal/interfaces/http/response"
	"s2dio.backend/internal/usecases"
)

// PageHandler serves the assembled public page content
type PageHandler struct {
	pageUsecase *usecases.PageUsecase
}

// NewPageHandler creates a new page handler
func NewPageHandler(pageUsecase *usecases.PageUsecase) *PageHandler {
	return &PageHandler{pageUsecase: pageUsecase}
}

// GetPage returns all content the public site needs in one payload
// GET /api/v1/page
func (h *PageHandler) GetPage(c *gin.Context) {
	page := h.pageUsecase.GetPage(c.Request.Context())
	response.Success(c, http.StatusOK, page)
}
