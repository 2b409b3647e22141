package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"motionpro/internal/auth"
	"motionpro/internal/blocktypes"
	"motionpro/internal/config"
	"motionpro/internal/handler"
	"motionpro/internal/middleware"
	"motionpro/internal/repository/postgres"
	postgresPages "motionpro/internal/repository/postgres/pages"
	"motionpro/internal/service"
	servicePages "motionpro/internal/service/pages"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logOutput := os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = logFile
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	workspaceRepo := postgres.NewWorkspaceRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	subsectionRepo := postgres.NewSubsectionRepository(repoConfig)
	pageRepo := postgresPages.NewPageRepository(repoConfig)
	blockRepo := postgresPages.NewBlockRepository(repoConfig)
	commentRepo := postgresPages.NewCommentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Initialize block type registry
	blockTypeRegistry, err := blocktypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize block type registry: %v", err)
	}
	logger.Info("block type registry initialized")

	// Create services
	pageService := servicePages.NewPageService(pageRepo, blockRepo, commentRepo, workspaceRepo, blockTypeRegistry, txManager, logger)
	treeService := servicePages.NewTreeService(pageRepo, logger)
	blockService := servicePages.NewBlockService(blockRepo, pageRepo, blockTypeRegistry, txManager, logger)
	commentService := servicePages.NewCommentService(commentRepo, pageRepo, logger)
	workspaceService := service.NewWorkspaceService(workspaceRepo, sectionRepo, subsectionRepo, pageRepo, pageService, logger)
	sectionService := service.NewSectionService(workspaceRepo, sectionRepo, subsectionRepo, pageRepo, logger)

	// Create handlers
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService, logger)
	sectionHandler := handler.NewSectionHandler(sectionService, logger)
	pageHandler := handler.NewPageHandler(pageService, logger)
	treeHandler := handler.NewTreeHandler(treeService, logger)
	blockHandler := handler.NewBlockHandler(blockService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Workspace routes
	mux.HandleFunc("GET /api/workspaces", workspaceHandler.ListWorkspaces)
	mux.HandleFunc("POST /api/workspaces", workspaceHandler.CreateWorkspace)
	mux.HandleFunc("GET /api/workspaces/{id}", workspaceHandler.GetWorkspace)
	mux.HandleFunc("PATCH /api/workspaces/{id}", workspaceHandler.UpdateWorkspace)
	mux.HandleFunc("DELETE /api/workspaces/{id}", workspaceHandler.DeleteWorkspace)

	// Workspace tree endpoint
	mux.HandleFunc("GET /api/workspaces/{id}/tree", treeHandler.GetWorkspaceTree)

	// Section routes
	mux.HandleFunc("GET /api/workspaces/{id}/sections", sectionHandler.ListSections)
	mux.HandleFunc("POST /api/workspaces/{id}/sections", sectionHandler.CreateSection)
	mux.HandleFunc("PATCH /api/sections/{id}", sectionHandler.UpdateSection)
	mux.HandleFunc("DELETE /api/sections/{id}", sectionHandler.DeleteSection)

	// Subsection routes
	mux.HandleFunc("GET /api/sections/{id}/subsections", sectionHandler.ListSubsections)
	mux.HandleFunc("POST /api/sections/{id}/subsections", sectionHandler.CreateSubsection)
	mux.HandleFunc("PATCH /api/subsections/{id}", sectionHandler.UpdateSubsection)
	mux.HandleFunc("DELETE /api/subsections/{id}", sectionHandler.DeleteSubsection)

	// Page routes
	mux.HandleFunc("POST /api/pages", pageHandler.CreatePage)
	mux.HandleFunc("GET /api/pages/{id}", pageHandler.GetPage)
	mux.HandleFunc("PATCH /api/pages/{id}", pageHandler.UpdatePage)
	mux.HandleFunc("DELETE /api/pages/{id}", pageHandler.DeletePage)
	mux.HandleFunc("GET /api/pages/{id}/tree", treeHandler.GetSubtree)

	// Block routes
	mux.HandleFunc("GET /api/pages/{id}/blocks", blockHandler.ListBlocks)
	mux.HandleFunc("POST /api/pages/{id}/blocks", blockHandler.CreateBlock)
	mux.HandleFunc("PATCH /api/blocks/{id}/metadata", blockHandler.UpdateBlockMetadata)
	mux.HandleFunc("DELETE /api/blocks/{id}", blockHandler.DeleteBlock)

	// Comment routes
	mux.HandleFunc("GET /api/pages/{id}/comments", commentHandler.ListComments)
	mux.HandleFunc("POST /api/pages/{id}/comments", commentHandler.CreateComment)
	mux.HandleFunc("DELETE /api/comments/{id}", commentHandler.DeleteComment)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(jwtVerifier, logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
