package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
)

// Handlers groups every HTTP handler for route registration
type Handlers struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Workspace  *WorkspaceHandler
	Automation *AutomationHandler
	Report     *ReportHandler
	Social     *SocialHandler
	SWOT       *SWOTHandler
	Competitor *CompetitorHandler
	Growth     *GrowthHandler
	News       *NewsHandler
	Image      *ImageHandler
	WebSocket  *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, auth middleware.Authenticator, generationLimiter *middleware.RateLimiter, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Websocket upgrade authenticates via query-parameter token
	e.GET("/ws/dashboard", h.WebSocket.HandleWS)

	// API version 1
	api := e.Group("/api/v1")
	api.Use(auth.Authenticate())

	rateLimited := middleware.RateLimitMiddleware(generationLimiter)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.POST("/callback", h.Auth.Callback)
	authGroup.GET("/me", h.Auth.Me)

	// Profile and subscription routes
	profile := api.Group("/profile")
	profile.GET("", h.Profile.GetProfile)
	profile.PUT("", h.Profile.UpdateProfile)

	subscription := api.Group("/subscription")
	subscription.GET("", h.Profile.GetSubscription)
	subscription.POST("/upgrade", h.Profile.Upgrade)

	// Workspace routes
	workspaces := api.Group("/workspaces")
	workspaces.POST("", h.Workspace.CreateWorkspace)
	workspaces.GET("", h.Workspace.GetWorkspaces)
	workspaces.GET("/:id", h.Workspace.GetWorkspace)
	workspaces.PUT("/:id", h.Workspace.UpdateWorkspace)
	workspaces.DELETE("/:id", h.Workspace.DeleteWorkspace)

	// Automation routes
	automations := api.Group("/automations")
	automations.POST("", h.Automation.CreateAutomation)
	automations.POST("/generate", h.Automation.GenerateAutomation, rateLimited)
	automations.GET("", h.Automation.GetAutomations)
	automations.GET("/:id", h.Automation.GetAutomation)
	automations.PUT("/:id", h.Automation.UpdateAutomation)
	automations.DELETE("/:id", h.Automation.DeleteAutomation)

	// Report routes
	reports := api.Group("/reports")
	reports.POST("", h.Report.CreateReport)
	reports.POST("/generate", h.Report.GenerateReport, rateLimited)
	reports.GET("", h.Report.GetReports)
	reports.GET("/:id", h.Report.GetReport)
	reports.PUT("/:id", h.Report.UpdateReport)
	reports.DELETE("/:id", h.Report.DeleteReport)

	// Social post routes
	socialPosts := api.Group("/social-posts")
	socialPosts.POST("/generate", h.Social.GeneratePost, rateLimited)
	socialPosts.GET("", h.Social.GetPosts)
	socialPosts.GET("/:id", h.Social.GetPost)
	socialPosts.PUT("/:id", h.Social.UpdatePost)
	socialPosts.DELETE("/:id", h.Social.DeletePost)

	// SWOT routes
	swot := api.Group("/swot")
	swot.POST("/generate", h.SWOT.GenerateAnalysis, rateLimited)
	swot.GET("", h.SWOT.GetAnalyses)
	swot.GET("/:id", h.SWOT.GetAnalysis)
	swot.DELETE("/:id", h.SWOT.DeleteAnalysis)

	// Competitor routes
	competitors := api.Group("/competitors")
	competitors.POST("/analyze", h.Competitor.AnalyzeCompetitors, rateLimited)
	competitors.GET("", h.Competitor.GetAnalyses)
	competitors.GET("/:id", h.Competitor.GetAnalysis)
	competitors.DELETE("/:id", h.Competitor.DeleteAnalysis)

	// Growth plan routes
	growth := api.Group("/growth")
	growth.POST("/generate", h.Growth.GeneratePlan, rateLimited)
	growth.GET("", h.Growth.GetPlans)
	growth.GET("/:id", h.Growth.GetPlan)
	growth.PUT("/:id", h.Growth.UpdatePlan)
	growth.DELETE("/:id", h.Growth.DeletePlan)

	// News routes
	newsGroup := api.Group("/news")
	newsGroup.GET("/latest", h.News.Latest)
	newsGroup.GET("/search", h.News.Search)
	newsGroup.GET("/market", h.News.Market)
	newsGroup.GET("/sources", h.News.Sources)

	// Image routes
	images := api.Group("/images")
	images.POST("/acquire", h.Image.Acquire, rateLimited)
}
