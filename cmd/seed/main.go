package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"motionpro/internal/blocktypes"
	"motionpro/internal/config"
	"motionpro/internal/domain/services"
	pagesSvc "motionpro/internal/domain/services/pages"
	"motionpro/internal/repository/postgres"
	postgresPages "motionpro/internal/repository/postgres/pages"
	"motionpro/internal/service"
	servicePages "motionpro/internal/service/pages"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo content")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("Preparing database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		return
	}

	if err := seedDemoWorkspace(ctx, pool, tables, logger); err != nil {
		log.Fatalf("Failed to seed demo workspace: %v", err)
	}
	log.Println("Demo workspace seeded")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Workspaces + ` (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Sections + ` (
			id UUID PRIMARY KEY,
			workspace_id UUID NOT NULL REFERENCES ` + tables.Workspaces + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Subsections + ` (
			id UUID PRIMARY KEY,
			section_id UUID NOT NULL REFERENCES ` + tables.Sections + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// parent_id is RESTRICT, not CASCADE: descendants are removed by the
		// service cascade, and the constraint backstops racing writes
		`CREATE TABLE IF NOT EXISTS ` + tables.Pages + ` (
			id UUID PRIMARY KEY,
			workspace_id UUID NOT NULL REFERENCES ` + tables.Workspaces + `(id),
			section_id UUID REFERENCES ` + tables.Sections + `(id) ON DELETE SET NULL,
			subsection_id UUID REFERENCES ` + tables.Subsections + `(id) ON DELETE SET NULL,
			parent_id UUID REFERENCES ` + tables.Pages + `(id) ON DELETE RESTRICT,
			title TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'page',
			status TEXT NOT NULL DEFAULT '',
			assignees JSONB NOT NULL DEFAULT '[]',
			deadline TIMESTAMPTZ,
			properties JSONB NOT NULL DEFAULT '{}',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Blocks + ` (
			id UUID PRIMARY KEY,
			page_id UUID NOT NULL REFERENCES ` + tables.Pages + `(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			metadata JSONB NOT NULL DEFAULT '{}',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Comments + ` (
			id UUID PRIMARY KEY,
			page_id UUID NOT NULL REFERENCES ` + tables.Pages + `(id) ON DELETE CASCADE,
			author_id UUID NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `pages_parent ON ` + tables.Pages + `(parent_id, sort_order, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `pages_workspace_roots ON ` + tables.Pages + `(workspace_id, section_id, subsection_id) WHERE parent_id IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `blocks_page ON ` + tables.Blocks + `(page_id, sort_order)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_page ON ` + tables.Comments + `(page_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `sections_workspace ON ` + tables.Sections + `(workspace_id, sort_order)`,
	}
	for _, stmt := range indexes {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Comments,
		tables.Blocks,
		tables.Pages,
		tables.Subsections,
		tables.Sections,
		tables.Workspaces,
	}

	for _, table := range tableNames {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return err
		}
		log.Printf("  dropped %s", table)
	}

	return nil
}

// seedDemoWorkspace creates a small nested workspace through the real
// services, so seeded data obeys the same ordering rules as live writes
func seedDemoWorkspace(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, logger *slog.Logger) error {
	// Keep seed output on stdout via log; silence service-level logs
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	repoConfig := &postgres.RepositoryConfig{Pool: pool, Tables: tables, Logger: logger}
	workspaceRepo := postgres.NewWorkspaceRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	subsectionRepo := postgres.NewSubsectionRepository(repoConfig)
	pageRepo := postgresPages.NewPageRepository(repoConfig)
	blockRepo := postgresPages.NewBlockRepository(repoConfig)
	commentRepo := postgresPages.NewCommentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	registry, err := blocktypes.NewRegistry()
	if err != nil {
		return err
	}

	pageService := servicePages.NewPageService(pageRepo, blockRepo, commentRepo, workspaceRepo, registry, txManager, quiet)
	blockService := servicePages.NewBlockService(blockRepo, pageRepo, registry, txManager, quiet)
	workspaceService := service.NewWorkspaceService(workspaceRepo, sectionRepo, subsectionRepo, pageRepo, pageService, quiet)
	sectionService := service.NewSectionService(workspaceRepo, sectionRepo, subsectionRepo, pageRepo, quiet)

	ws, err := workspaceService.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Demo Workspace", Icon: "🏠"})
	if err != nil {
		return err
	}

	section, err := sectionService.CreateSection(ctx, &services.CreateSectionRequest{WorkspaceID: ws.ID, Name: "Projects"})
	if err != nil {
		return err
	}

	root, err := pageService.CreatePage(ctx, &pagesSvc.CreatePageRequest{
		WorkspaceID: ws.ID,
		SectionID:   &section.ID,
		Title:       "Product Launch",
		Icon:        "🚀",
	})
	if err != nil {
		return err
	}

	for _, title := range []string{"Research", "Design", "Rollout"} {
		child, err := pageService.CreatePage(ctx, &pagesSvc.CreatePageRequest{
			WorkspaceID: ws.ID,
			ParentID:    &root.ID,
			Title:       title,
		})
		if err != nil {
			return err
		}
		if _, err := blockService.CreateBlock(ctx, &pagesSvc.CreateBlockRequest{
			PageID:  child.ID,
			Type:    "text",
			Content: "Notes for " + title,
		}); err != nil {
			return err
		}
	}

	log.Printf("  workspace %s with section %s and page tree under %s", ws.ID, section.ID, root.ID)
	return nil
}
