package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"motionpro/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Workspaces  string
	Sections    string
	Subsections string
	Pages       string
	Blocks      string
	Comments    string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Workspaces:  fmt.Sprintf("%sworkspaces", prefix),
		Sections:    fmt.Sprintf("%ssections", prefix),
		Subsections: fmt.Sprintf("%ssubsections", prefix),
		Pages:       fmt.Sprintf("%spages", prefix),
		Blocks:      fmt.Sprintf("%sblocks", prefix),
		Comments:    fmt.Sprintf("%scomments", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// By default, pgx uses prepared statements (QueryExecModeCacheStatement).
// Transaction-pooling proxies (PgBouncer on port 6543) do not support
// prepared statements, so that case is auto-detected and switched to
// QueryExecModeCacheDescribe, which still uses the extended protocol
// (required for proper JSONB encoding of map[string]interface{} columns
// like page properties and block metadata) but caches only statement
// descriptions. An explicit default_query_exec_mode in the connection
// string takes precedence over the auto-detection.
//
// The fmt.Sprintf interpolation of table prefixes (dev_, test_, prod_)
// is safe with prepared statements because the SQL string is fixed before
// being sent; each environment gets its own statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	// Configure pool size
	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the transaction.
// Otherwise, it returns the provided pool.
// This enables repositories to automatically participate in transactions when they exist.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
