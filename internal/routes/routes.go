package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/config"
	"github.com/teamboard/teamboard/internal/handlers"
	"github.com/teamboard/teamboard/internal/middleware"
	"github.com/teamboard/teamboard/internal/services"
	"github.com/teamboard/teamboard/internal/store"
)

func SetupRouter(cfg *config.Config, st *store.Store, authService *services.AuthService) *gin.Engine {
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Initialize services
	reportService := services.NewReportService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(st)
	memberHandler := handlers.NewMemberHandler(st)
	milestoneHandler := handlers.NewMilestoneHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)
	evaluationHandler := handlers.NewEvaluationHandler(st, reportService, cfg)

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("")
			authProtected.Use(middleware.AuthMiddleware(authService))
			{
				authProtected.GET("/me", authHandler.GetCurrentUser)
			}
		}

		// Everything below is private to the allow-listed user.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			// Project routes
			projects := protected.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.POST("", projectHandler.CreateProject)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
				projects.GET("/:id/members", projectHandler.GetProjectMembers)
				projects.GET("/:id/milestones", projectHandler.GetProjectMilestones)
			}

			// Member routes
			members := protected.Group("/members")
			{
				members.GET("", memberHandler.ListMembers)
				members.POST("", memberHandler.CreateMember)
				members.GET("/person/:name", memberHandler.GetPerson)
				members.PUT("/:id", memberHandler.UpdateMember)
				members.DELETE("/:id", memberHandler.DeleteMember)
			}

			// Milestone routes
			milestones := protected.Group("/milestones")
			{
				milestones.POST("", milestoneHandler.CreateMilestone)
				milestones.PUT("/:id", milestoneHandler.UpdateMilestone)
				milestones.DELETE("/:id", milestoneHandler.DeleteMilestone)
			}

			// Aggregated views
			protected.GET("/dashboard", dashboardHandler.GetDashboard)
			protected.GET("/evaluation", evaluationHandler.GetEvaluation)
			protected.GET("/reports/evaluation", evaluationHandler.ExportEvaluation)
		}
	}

	return router
}
