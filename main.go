package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/PerHac13/ashaikh/src/config"
	"github.com/PerHac13/ashaikh/src/database"
	"github.com/PerHac13/ashaikh/src/handlers"
	"github.com/PerHac13/ashaikh/src/logging"
	"github.com/PerHac13/ashaikh/src/middleware"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/PerHac13/ashaikh/src/site"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Load the static site profile
	profile, err := site.LoadProfile(cfg.SiteConfigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SiteConfigPath).Msg("failed to load site config")
	}

	// Initialize services
	userService := services.NewUserService(db.GetPool())
	sessionService := services.NewSessionService(db.GetPool())
	experienceService := services.NewExperienceService(db.GetPool())
	projectService := services.NewProjectService(db.GetPool())
	resumeService := services.NewResumeService(db.GetPool())
	cleanupService := services.NewCleanupService(sessionService, cfg.EnableSessionSweep, cfg.SessionSweepInterval)

	uploadService := services.NewUploadService(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	if uploadService != nil {
		log.Info().Str("cloud", cfg.CloudinaryCloudName).Msg("image uploads enabled")
	} else {
		log.Warn().Msg("Cloudinary credentials not configured - image uploads disabled")
	}

	// Auto-seed admin user on first run (if ADMIN_USERNAME and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		hasUsers, err := userService.HasUsers(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin users")
		} else if !hasUsers {
			if _, err := userService.CreateUser(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
				log.Error().Err(err).Msg("failed to create initial admin user")
			} else {
				log.Info().Str("username", cfg.AdminUsername).Msg("initial admin user created")
			}
		}
	}

	// Start background services
	go cleanupService.Start(context.Background())

	// Create Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	// CORS: the admin frontend sends the session cookie cross-origin, so
	// origins must be listed explicitly rather than wildcarded
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.AllowedOrigins != "" {
		corsConfig.AllowOrigins = splitOrigins(cfg.AllowedOrigins)
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(corsConfig))

	// Setup routes
	setupRoutes(router, db, profile, userService, sessionService, experienceService, projectService, resumeService, uploadService, cfg)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:              ":" + formatPort(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Stop background sweep
	cleanupService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	profile *site.Profile,
	userService *services.UserService,
	sessionService *services.SessionService,
	experienceService *services.ExperienceService,
	projectService *services.ProjectService,
	resumeService *services.ResumeService,
	uploadService *services.UploadService,
	cfg *config.Config,
) {
	cookieCfg := middleware.CookieConfig{
		Secure: cfg.IsProduction(),
		MaxAge: int(cfg.SessionTTL.Seconds()),
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService, sessionService, cookieCfg, cfg.SessionTTL)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	resumeHandler := handlers.NewResumeHandler(resumeService, cfg.StaticResumeURL)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	portfolioHandler := handlers.NewPortfolioHandler(profile, experienceService, projectService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	// Public portfolio surface
	router.GET("/api/portfolio", portfolioHandler.HandlePortfolio)
	router.GET("/api/experiences", experienceHandler.HandleList)
	router.GET("/api/projects", projectHandler.HandleList)
	router.GET("/api/resume/active", resumeHandler.HandleGetActive)
	router.GET("/resume", resumeHandler.HandleRedirect)

	// Static files (fallback resume lives here)
	router.Static("/static", "./static")

	// Authentication endpoints
	router.POST("/api/auth/login",
		middleware.LoginRateLimitMiddleware(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.LoginRateLimitPerMinute,
			Burst:             cfg.LoginRateLimitBurst,
		}),
		authHandler.HandleLogin)
	router.POST("/api/auth/logout", authHandler.HandleLogout)
	router.GET("/api/auth/session", authHandler.HandleSessionCheck)

	// Admin endpoints (all require a valid session)
	admin := router.Group("/api/admin")
	admin.Use(middleware.SessionAuth(sessionService, userService, cookieCfg))
	{
		admin.GET("/experiences/:id", experienceHandler.HandleGet)
		admin.POST("/experiences", experienceHandler.HandleCreate)
		admin.PUT("/experiences/:id", experienceHandler.HandleUpdate)
		admin.DELETE("/experiences/:id", experienceHandler.HandleDelete)

		admin.GET("/projects/:id", projectHandler.HandleGet)
		admin.POST("/projects", projectHandler.HandleCreate)
		admin.PUT("/projects/:id", projectHandler.HandleUpdate)
		admin.DELETE("/projects/:id", projectHandler.HandleDelete)

		admin.GET("/resume-links", resumeHandler.HandleList)
		admin.POST("/resume-links", resumeHandler.HandleCreate)
		admin.PUT("/resume-links/:id", resumeHandler.HandleUpdate)
		admin.DELETE("/resume-links/:id", resumeHandler.HandleDelete)
		admin.POST("/resume-links/:id/activate", resumeHandler.HandleSetActive)

		admin.POST("/uploads", uploadHandler.HandleUpload)
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func formatPort(port int) string {
	return fmt.Sprintf("%d", port)
}
