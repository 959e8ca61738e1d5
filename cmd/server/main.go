package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"akademikform/internal/auth"
	"akademikform/internal/catalog"
	"akademikform/internal/config"
	"akademikform/internal/domain/repositories"
	"akademikform/internal/handler"
	"akademikform/internal/metrics"
	"akademikform/internal/middleware"
	"akademikform/internal/repository/memory"
	"akademikform/internal/repository/postgres"
	"akademikform/internal/service"
	"akademikform/internal/service/ai"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Load the static template catalog
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load template catalog: %v", err)
	}
	logger.Info("template catalog loaded", "templates", len(cat.List()))

	// Pick the project store: durable when a database is configured,
	// in-memory otherwise.
	var repo repositories.ProjectRepository
	var dbPinger handler.DBPinger
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		pgRepo := postgres.NewProjectRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure database schema: %v", err)
		}
		repo = pgRepo
		dbPinger = pool
		logger.Info("database connected")
	} else {
		repo = memory.NewProjectRepository()
		logger.Warn("DATABASE_URL not set - using in-memory store, data is lost on restart")
	}

	// Resolve the text provider and build the generation gateway
	provider := ai.SetupProvider(cfg, logger)
	gateway := ai.NewGateway(provider, logger)

	// Create services
	projectService := service.NewProjectService(repo, cat, logger)
	sectionService := service.NewSectionService(repo, cat, gateway, logger)

	// Create handlers
	handler.SetDebug(cfg.Debug)
	healthHandler := handler.NewHealthHandler(cfg.Environment, gateway.Available(), dbPinger)
	templateHandler := handler.NewTemplateHandler(cat)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	sectionHandler := handler.NewSectionHandler(sectionService, logger)
	aiHandler := handler.NewAIHandler(gateway, logger)

	// Principal resolution: shared-secret JWT when configured, static
	// mock user otherwise.
	var resolver auth.Resolver
	if cfg.JWTSecret != "" {
		resolver = auth.NewJWTResolver(cfg.JWTSecret)
		logger.Info("principal resolution", "mode", "jwt")
	} else {
		resolver = auth.NewStaticResolver()
		logger.Warn("JWT_SECRET not set - all requests act as the mock user")
	}

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Probes and banner
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("GET /api/v1/ready", healthHandler.Ready)
	mux.HandleFunc("GET /api/v1/live", healthHandler.Live)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Template catalog routes
	mux.HandleFunc("GET /api/v1/templates", templateHandler.ListTemplates)
	mux.HandleFunc("GET /api/v1/templates/{id}", templateHandler.GetTemplate)

	// Project routes
	mux.HandleFunc("GET /api/v1/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/v1/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/v1/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PATCH /api/v1/projects/{id}", projectHandler.UpdateTitle)
	mux.HandleFunc("DELETE /api/v1/projects/{id}", projectHandler.DeleteProject)
	mux.HandleFunc("PATCH /api/v1/projects/{id}/general-info", projectHandler.UpdateGeneralInfo)
	mux.HandleFunc("PATCH /api/v1/projects/{id}/keywords", projectHandler.UpdateKeywords)
	mux.HandleFunc("PATCH /api/v1/projects/{id}/scientific-merit", projectHandler.UpdateScientificMerit)
	mux.HandleFunc("PATCH /api/v1/projects/{id}/project-management", projectHandler.UpdateProjectManagement)
	mux.HandleFunc("PATCH /api/v1/projects/{id}/wide-impact", projectHandler.UpdateWideImpact)

	// Section routes
	mux.HandleFunc("PATCH /api/v1/sections/{id}", sectionHandler.UpdateDraft)
	mux.HandleFunc("POST /api/v1/sections/{id}/generate", sectionHandler.Generate)
	mux.HandleFunc("POST /api/v1/sections/{id}/revise", sectionHandler.Revise)
	mux.HandleFunc("POST /api/v1/sections/{id}/accept", sectionHandler.Accept)
	mux.HandleFunc("GET /api/v1/sections/{id}/revisions", sectionHandler.ListRevisions)

	// Free-standing AI routes
	mux.HandleFunc("POST /api/v1/ai/generate", aiHandler.Generate)
	mux.HandleFunc("POST /api/v1/ai/revise", aiHandler.Revise)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Metrics → Routes
	// Metrics must wrap the mux directly: the mux records the matched
	// route pattern on the request it receives, and auth forwards a
	// copy, so a metrics layer outside auth would never see it.
	h = metrics.Middleware(h)
	h = middleware.Auth(resolver)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // provider calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
