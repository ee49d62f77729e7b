package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/config"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/handler"
	"github.com/trigenthq/trigent/trigent-backend/internal/image"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/news"
	"github.com/trigenthq/trigent/trigent-backend/internal/repository/localdb"
	"github.com/trigenthq/trigent/trigent-backend/internal/repository/postgres"
	"github.com/trigenthq/trigent/trigent-backend/internal/repository/storage"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// repositories groups the persistence facade behind one struct so the
// rest of main is identical in local and cloud mode
type repositories struct {
	users       domain.UserRepository
	workspaces  domain.WorkspaceRepository
	automations domain.AutomationRepository
	reports     domain.ReportRepository
	socialPosts domain.SocialPostRepository
	swot        domain.SWOTRepository
	competitors domain.CompetitorRepository
	growth      domain.GrowthRepository
}

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	// Select the persistence backend
	var repos repositories
	switch cfg.StorageMode {
	case config.ModeLocal:
		db := localdb.Open(cfg.LocalDBPath)
		repos = repositories{
			users:       localdb.NewUserRepository(db),
			workspaces:  localdb.NewWorkspaceRepository(db),
			automations: localdb.NewAutomationRepository(db),
			reports:     localdb.NewReportRepository(db),
			socialPosts: localdb.NewSocialPostRepository(db),
			swot:        localdb.NewSWOTRepository(db),
			competitors: localdb.NewCompetitorRepository(db),
			growth:      localdb.NewGrowthRepository(db),
		}
		log.Info().Str("path", cfg.LocalDBPath).Msg("Using local file storage")
	case config.ModeCloud:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ping database")
		}
		log.Info().Msg("Connected to database")

		repos = repositories{
			users:       postgres.NewUserRepository(pool),
			workspaces:  postgres.NewWorkspaceRepository(pool),
			automations: postgres.NewAutomationRepository(pool),
			reports:     postgres.NewReportRepository(pool),
			socialPosts: postgres.NewSocialPostRepository(pool),
			swot:        postgres.NewSWOTRepository(pool),
			competitors: postgres.NewCompetitorRepository(pool),
			growth:      postgres.NewGrowthRepository(pool),
		}
	}

	// Generative providers. All of them degrade gracefully when
	// unconfigured: generation serves fallbacks, news reports an error.
	aiClient, err := ai.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AI client")
	}
	acquirer := image.NewAcquirer(aiClient, nil)
	newsClient := news.NewClient(cfg.NewsDataAPIKey)

	// S3-backed image storage is optional
	var imageRepo storage.ImageRepository
	if cfg.S3Configured() {
		s3Repo, err := storage.NewS3ImageRepository(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize image storage")
		}
		imageRepo = s3Repo
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Image storage enabled")
	} else {
		log.Warn().Msg("S3 not configured, generated images stay inline")
	}

	// Websocket hub for dashboard events
	hub := websocket.NewHub()

	// Initialize services
	authService := service.NewAuthService(repos.users, repos.workspaces)
	profileService := service.NewProfileService(repos.users)
	workspaceService := service.NewWorkspaceService(repos.workspaces)
	imageService := service.NewImageService(imageRepo)
	automationService := service.NewAutomationService(repos.automations, repos.workspaces, aiClient, hub)
	reportService := service.NewReportService(repos.reports, repos.workspaces, aiClient, hub)
	socialService := service.NewSocialService(repos.socialPosts, repos.workspaces, aiClient, acquirer, hub)
	swotService := service.NewSWOTService(repos.swot, repos.workspaces, aiClient, hub)
	competitorService := service.NewCompetitorService(repos.competitors, repos.workspaces, aiClient, hub)
	growthService := service.NewGrowthService(repos.growth, repos.workspaces, aiClient, hub)

	// Authentication strategy: Auth0 in cloud mode, fixed guest
	// identity in local mode
	users := &userProviderAdapter{userRepo: repos.users}
	var authenticator middleware.Authenticator
	if cfg.StorageMode == config.ModeCloud {
		authMiddleware, err := middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience, users)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth middleware")
		}
		authenticator = authMiddleware
	} else {
		authenticator = middleware.NewGuestMiddleware(users)
	}

	// Per-user rate limiting on generation routes
	generationLimiter := middleware.NewRateLimiter()
	defer generationLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, profileService),
		Profile:    handler.NewProfileHandler(profileService),
		Workspace:  handler.NewWorkspaceHandler(workspaceService),
		Automation: handler.NewAutomationHandler(automationService),
		Report:     handler.NewReportHandler(reportService),
		Social:     handler.NewSocialHandler(socialService),
		SWOT:       handler.NewSWOTHandler(swotService),
		Competitor: handler.NewCompetitorHandler(competitorService),
		Growth:     handler.NewGrowthHandler(growthService),
		News:       handler.NewNewsHandler(newsClient),
		Image:      handler.NewImageHandler(acquirer, imageService),
		WebSocket:  handler.NewWebSocketHandler(hub, authenticator, users, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Register API routes
	handler.RegisterRoutes(e, authenticator, generationLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("mode", string(cfg.StorageMode)).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// userProviderAdapter adapts a domain.UserRepository to middleware.UserProvider
type userProviderAdapter struct {
	userRepo domain.UserRepository
}

// GetUserIDBySubject implements middleware.UserProvider
func (a *userProviderAdapter) GetUserIDBySubject(subject string) (string, error) {
	user, err := a.userRepo.GetBySubject(subject)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
