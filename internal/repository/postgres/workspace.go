package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"motionpro/internal/domain"
	"motionpro/internal/domain/models"
	"motionpro/internal/domain/repositories"
)

// PostgresWorkspaceRepository implements the WorkspaceRepository interface
type PostgresWorkspaceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(config *RepositoryConfig) repositories.WorkspaceRepository {
	return &PostgresWorkspaceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new workspace
func (r *PostgresWorkspaceRepository) Create(ctx context.Context, ws *models.Workspace) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		ws.ID,
		ws.Name,
		ws.Icon,
		ws.CreatedAt,
		ws.UpdatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("workspace '%s': %w", ws.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create workspace: %w", err)
	}

	return nil
}

// GetByID retrieves a workspace by ID
func (r *PostgresWorkspaceRepository) GetByID(ctx context.Context, id string) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT id, name, icon, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Workspaces)

	var ws models.Workspace
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&ws.ID,
		&ws.Name,
		&ws.Icon,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	return &ws, nil
}

// List retrieves all workspaces ordered by creation time
func (r *PostgresWorkspaceRepository) List(ctx context.Context) ([]models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT id, name, icon, created_at, updated_at
		FROM %s
		ORDER BY created_at ASC
	`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		var ws models.Workspace
		err := rows.Scan(&ws.ID, &ws.Name, &ws.Icon, &ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workspaces: %w", err)
	}

	return workspaces, nil
}

// Update updates a workspace
func (r *PostgresWorkspaceRepository) Update(ctx context.Context, ws *models.Workspace) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, icon = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, ws.Name, ws.Icon, ws.UpdatedAt, ws.ID)
	if err != nil {
		return fmt.Errorf("update workspace: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("workspace %s: %w", ws.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a workspace
func (r *PostgresWorkspaceRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("workspace still has pages: %w", domain.ErrConflict)
		}
		return fmt.Errorf("delete workspace: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
