package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"s2dio.backend/internal/interfaces/http/response"
	"s2dio.backend/internal/usecases"
)

// GifHandler handles the daily gif endpoint
type GifHandler struct {
	gifUsecase *usecases.GifUsecase
}

// NewGifHandler creates a new gif handler
func NewGifHandler(gifUsecase *usecases.GifUsecase) *GifHandler {
	return &GifHandler{gifUsecase: gifUsecase}
}

// GifOfTheDay returns the gif picked for the current date
// GET /api/v1/gif-of-the-day
func (h *GifHandler) GifOfTheDay(c *gin.Context) {
	gif := h.gifUsecase.GifOfTheDay(c.Request.Context())
	response.Success(c, http.StatusOK, gif)
}
