package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"s2dio.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:    &handlers.AuthHandler{},
		sectionHandler: &handlers.SectionHandler{},
		projectHandler: &handlers.ProjectHandler{},
		serviceHandler: &handlers.ServiceHandler{},
		teamHandler:    &handlers.TeamHandler{},
		gifHandler:     &handlers.GifHandler{},
		pageHandler:    &handlers.PageHandler{},
		sessionAuthMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	routes := r.Routes()
	if len(routes) < 25 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/refresh"},
		{"GET", "/api/v1/auth/me"},
		{"POST", "/api/v1/auth/logout"},
		{"POST", "/api/v1/auth/change-password"},
		{"GET", "/api/v1/page"},
		{"GET", "/api/v1/gif-of-the-day"},
		{"GET", "/api/v1/sections"},
		{"GET", "/api/v1/sections/:id"},
		{"GET", "/api/v1/projects/:id"},
		{"GET", "/api/v1/services"},
		{"GET", "/api/v1/team"},
		{"GET", "/api/v1/admin/sections"},
		{"POST", "/api/v1/admin/projects"},
		{"PUT", "/api/v1/admin/services/:id"},
		{"DELETE", "/api/v1/admin/team/:id"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           &handlers.AuthHandler{},
		sectionHandler:        &handlers.SectionHandler{},
		projectHandler:        &handlers.ProjectHandler{},
		serviceHandler:        &handlers.ServiceHandler{},
		teamHandler:           &handlers.TeamHandler{},
		gifHandler:            &handlers.GifHandler{},
		pageHandler:           &handlers.PageHandler{},
		sessionAuthMiddleware: func(c *gin.Context) { c.Next() },
	})

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
