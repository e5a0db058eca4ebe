package main

import (
	"github.com/gin-gonic/gin"
	"s2dio.backend/internal/interfaces/http/handlers"
	"s2dio.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	sectionHandler        *handlers.SectionHandler
	projectHandler        *handlers.ProjectHandler
	serviceHandler        *handlers.ServiceHandler
	teamHandler           *handlers.TeamHandler
	gifHandler            *handlers.GifHandler
	pageHandler           *handlers.PageHandler
	sessionAuthMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.sessionAuthMiddleware, d.authHandler.GetMe)
			auth.POST("/logout", d.sessionAuthMiddleware, d.authHandler.Logout)
			auth.POST("/change-password", d.sessionAuthMiddleware, d.authHandler.ChangePassword)
		}

		// Aggregated public page content
		v1.GET("/page", d.pageHandler.GetPage)

		// Daily gif (public)
		v1.GET("/gif-of-the-day", d.gifHandler.GifOfTheDay)

		// Section routes (public read)
		sections := v1.Group("/sections")
		{
			sections.GET("", d.sectionHandler.ListSections)
			sections.GET("/:id", d.sectionHandler.GetSection)
		}

		// Project routes (public read)
		projects := v1.Group("/projects")
		{
			projects.GET("", d.projectHandler.ListProjects)
			projects.GET("/:id", d.projectHandler.GetProject)
		}

		// Service routes (public read)
		services := v1.Group("/services")
		{
			services.GET("", d.serviceHandler.ListServices)
			services.GET("/:id", d.serviceHandler.GetService)
		}

		// Team routes (public read)
		team := v1.Group("/team")
		{
			team.GET("", d.teamHandler.ListTeam)
			team.GET("/:id", d.teamHandler.GetTeamMember)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.sessionAuthMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/sections", d.sectionHandler.ListAdminSections)
			admin.POST("/sections", d.sectionHandler.CreateSection)
			admin.PUT("/sections/:id", d.sectionHandler.UpdateSection)
			admin.DELETE("/sections/:id", d.sectionHandler.DeleteSection)

			admin.GET("/projects", d.projectHandler.ListAdminProjects)
			admin.POST("/projects", d.projectHandler.CreateProject)
			admin.PUT("/projects/:id", d.projectHandler.UpdateProject)
			admin.DELETE("/projects/:id", d.projectHandler.DeleteProject)

			admin.GET("/services", d.serviceHandler.ListAdminServices)
			admin.POST("/services", d.serviceHandler.CreateService)
			admin.PUT("/services/:id", d.serviceHandler.UpdateService)
			admin.DELETE("/services/:id", d.serviceHandler.DeleteService)

			admin.GET("/team", d.teamHandler.ListAdminTeam)
			admin.POST("/team", d.teamHandler.CreateTeamMember)
			admin.PUT("/team/:id", d.teamHandler.UpdateTeamMember)
			admin.DELETE("/team/:id", d.teamHandler.DeleteTeamMember)
		}
	}
}
