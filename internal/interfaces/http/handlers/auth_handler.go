package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/interfaces/http/middleware"
	"s2dio.backend/internal/interfaces/http/response"
	"s2dio.backend/pkg/crypto"
	"s2dio.backend/pkg/jwt"
	"s2dio.backend/pkg/logger"
	"s2dio.backend/pkg/redis"
)

// AuthService covers the auth operations the handler needs.
type AuthService interface {
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// SessionStore abstracts the encrypted session storage.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase   AuthService
	sessionStore  SessionStore
	sessionExpiry time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService, sessionStore SessionStore, sessionExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		sessionStore:  sessionStore,
		sessionExpiry: sessionExpiry,
	}
}

// Login handles admin login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", err))
			return
		}
		response.Error(c, err)
		return
	}

	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		response.Error(c, err)
		return
	}

	sessionData := &redis.SessionData{
		AccessToken:  authResponse.AccessToken,
		RefreshToken: authResponse.RefreshToken,
	}
	if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, sessionData, h.sessionExpiry); err != nil {
		logger.Error(c.Request.Context(), "Failed to create session", zap.Error(err))
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, int(h.sessionExpiry.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"sessionId": sessionID,
		"user": gin.H{
			"id":    authResponse.User.ID,
			"email": authResponse.User.Email,
			"name":  authResponse.User.Name,
			"role":  authResponse.User.Role,
		},
	})
}

// Logout deletes the current session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-Id")
	if sessionID == "" {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
			sessionID = cookie
		}
	}
	if sessionID != "" {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), sessionID); err != nil {
			logger.Warn(c.Request.Context(), "Failed to delete session", zap.Error(err))
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// RefreshToken rotates the tokens stored in the current session
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-Id")
	if sessionID == "" {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
			sessionID = cookie
		}
	}
	if sessionID == "" {
		response.Error(c, domainerrors.Unauthorized("Session is required"))
		return
	}

	session, err := h.sessionStore.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid or expired session"))
		return
	}

	tokenPair, err := h.authUsecase.RefreshToken(c.Request.Context(), session.RefreshToken)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid or expired refresh token"))
		return
	}

	sessionData := &redis.SessionData{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}
	if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, sessionData, h.sessionExpiry); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Session refreshed"})
}

// GetMe returns current authenticated user details
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ChangePassword changes the current account password
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Current password is incorrect", err))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed"})
}
