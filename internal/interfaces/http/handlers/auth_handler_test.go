package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
	"s2dio.backend/internal/interfaces/http/middleware"
	"s2dio.backend/pkg/jwt"
	"s2dio.backend/pkg/redis"
)

type authServiceStub struct {
	loginFn        func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	refreshTokenFn func(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	changePassFn   func(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error
	getUserByIDFn  func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	return s.refreshTokenFn(ctx, refreshToken)
}
func (s authServiceStub) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	return s.changePassFn(ctx, userID, input)
}
func (s authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserByIDFn(ctx, id)
}

type sessionStoreStub struct {
	createFn func(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	getFn    func(ctx context.Context, sessionID string) (*redis.SessionData, error)
	deleteFn func(ctx context.Context, sessionID string) error
}

func (s sessionStoreStub) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	return s.createFn(ctx, sessionID, data, expiration)
}
func (s sessionStoreStub) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	return s.getFn(ctx, sessionID)
}
func (s sessionStoreStub) DeleteSession(ctx context.Context, sessionID string) error {
	return s.deleteFn(ctx, sessionID)
}

func TestAuthHandler_LoginAndLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	var createdSessionID string
	var deletedSessionID string

	h := NewAuthHandler(
		authServiceStub{
			loginFn: func(_ context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
				if input.Email == "bad@s2dio.com" {
					return nil, domainerrors.ErrInvalidCredentials
				}
				return &entities.AuthResponse{
					AccessToken:  "access",
					RefreshToken: "refresh",
					User:         &entities.User{ID: userID, Email: input.Email, Name: "Admin", Role: entities.UserRoleAdmin},
				}, nil
			},
		},
		sessionStoreStub{
			createFn: func(_ context.Context, sessionID string, data *redis.SessionData, _ time.Duration) error {
				createdSessionID = sessionID
				if data.AccessToken != "access" {
					t.Fatalf("unexpected access token in session: %s", data.AccessToken)
				}
				return nil
			},
			deleteFn: func(_ context.Context, sessionID string) error {
				deletedSessionID = sessionID
				return nil
			},
		},
		time.Hour,
	)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)

	body, _ := json.Marshal(map[string]string{"email": "admin@s2dio.com", "password": "admin123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if createdSessionID == "" {
		t.Fatalf("expected a session to be created")
	}

	var loginBody struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginBody); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if loginBody.SessionID != createdSessionID {
		t.Fatalf("response session id %q does not match created %q", loginBody.SessionID, createdSessionID)
	}

	foundCookie := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value == createdSessionID {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatalf("expected session cookie to be set")
	}

	// Wrong credentials.
	body, _ = json.Marshal(map[string]string{"email": "bad@s2dio.com", "password": "nope"})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Logout via header.
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("X-Session-Id", createdSessionID)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if deletedSessionID != createdSessionID {
		t.Fatalf("expected session %q to be deleted, got %q", createdSessionID, deletedSessionID)
	}
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(
		authServiceStub{},
		sessionStoreStub{},
		time.Hour,
	)
	r := gin.New()
	r.POST("/auth/login", h.Login)

	// Missing password.
	body, _ := json.Marshal(map[string]string{"email": "admin@s2dio.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Invalid email format.
	body, _ = json.Marshal(map[string]string{"email": "not-an-email", "password": "x"})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var storedSession *redis.SessionData

	h := NewAuthHandler(
		authServiceStub{
			refreshTokenFn: func(_ context.Context, refreshToken string) (*jwt.TokenPair, error) {
				if refreshToken != "refresh-old" {
					return nil, errors.New("bad token")
				}
				return &jwt.TokenPair{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil
			},
		},
		sessionStoreStub{
			getFn: func(_ context.Context, sessionID string) (*redis.SessionData, error) {
				if sessionID != "sess-1" {
					return nil, errors.New("not found")
				}
				return &redis.SessionData{AccessToken: "access-old", RefreshToken: "refresh-old"}, nil
			},
			createFn: func(_ context.Context, _ string, data *redis.SessionData, _ time.Duration) error {
				storedSession = data
				return nil
			},
		},
		time.Hour,
	)

	r := gin.New()
	r.POST("/auth/refresh", h.RefreshToken)

	// Without a session.
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Unknown session.
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("X-Session-Id", "ghost")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Valid session rotates the stored tokens.
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("X-Session-Id", "sess-1")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if storedSession == nil || storedSession.AccessToken != "access-new" || storedSession.RefreshToken != "refresh-new" {
		t.Fatalf("session tokens were not rotated: %+v", storedSession)
	}
}

func TestAuthHandler_GetMeAndChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	h := NewAuthHandler(
		authServiceStub{
			getUserByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
				if id != userID {
					return nil, domainerrors.ErrNotFound
				}
				return &entities.User{ID: userID, Email: "admin@s2dio.com", Name: "Admin", Role: entities.UserRoleAdmin}, nil
			},
			changePassFn: func(_ context.Context, id uuid.UUID, input *entities.ChangePasswordInput) error {
				if input.CurrentPassword != "admin123" {
					return domainerrors.ErrInvalidCredentials
				}
				return nil
			},
		},
		sessionStoreStub{},
		time.Hour,
	)

	setUser := func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) }

	r := gin.New()
	r.GET("/auth/me", setUser, h.GetMe)
	r.POST("/auth/change-password", setUser, h.ChangePassword)
	r.GET("/auth/me-anon", h.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Without auth context.
	req = httptest.NewRequest(http.MethodGet, "/auth/me-anon", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Wrong current password.
	body, _ := json.Marshal(map[string]string{"currentPassword": "wrong-password", "newPassword": "new-password-1"})
	req = httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Short new password fails binding.
	body, _ = json.Marshal(map[string]string{"currentPassword": "admin123", "newPassword": "short"})
	req = httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}

	body, _ = json.Marshal(map[string]string{"currentPassword": "admin123", "newPassword": "new-password-1"})
	req = httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
