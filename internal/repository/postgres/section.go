package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"motionpro/internal/domain"
	"motionpro/internal/domain/models"
	"motionpro/internal/domain/repositories"
)

// PostgresSectionRepository implements the SectionRepository interface
type PostgresSectionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(config *RepositoryConfig) repositories.SectionRepository {
	return &PostgresSectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresSectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, workspace_id, name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		section.ID,
		section.WorkspaceID,
		section.Name,
		section.SortOrder,
		section.CreatedAt,
		section.UpdatedAt,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("workspace %s: %w", section.WorkspaceID, domain.ErrNotFound)
		}
		return fmt.Errorf("create section: %w", err)
	}

	return nil
}

func (r *PostgresSectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, workspace_id, name, sort_order, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Sections)

	var section models.Section
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.WorkspaceID,
		&section.Name,
		&section.SortOrder,
		&section.CreatedAt,
		&section.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get section: %w", err)
	}

	return &section, nil
}

func (r *PostgresSectionRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, workspace_id, name, sort_order, created_at, updated_at
		FROM %s
		WHERE workspace_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var section models.Section
		err := rows.Scan(
			&section.ID,
			&section.WorkspaceID,
			&section.Name,
			&section.SortOrder,
			&section.CreatedAt,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	return sections, nil
}

func (r *PostgresSectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, sort_order = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, section.Name, section.SortOrder, section.UpdatedAt, section.ID)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", section.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresSectionRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// PostgresSubsectionRepository implements the SubsectionRepository interface
type PostgresSubsectionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSubsectionRepository creates a new subsection repository
func NewSubsectionRepository(config *RepositoryConfig) repositories.SubsectionRepository {
	return &PostgresSubsectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresSubsectionRepository) Create(ctx context.Context, sub *models.Subsection) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Subsections)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		sub.ID,
		sub.SectionID,
		sub.Name,
		sub.SortOrder,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", sub.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("create subsection: %w", err)
	}

	return nil
}

func (r *PostgresSubsectionRepository) GetByID(ctx context.Context, id string) (*models.Subsection, error) {
	query := fmt.Sprintf(`
		SELECT id, section_id, name, sort_order, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Subsections)

	var sub models.Subsection
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&sub.ID,
		&sub.SectionID,
		&sub.Name,
		&sub.SortOrder,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("subsection %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get subsection: %w", err)
	}

	return &sub, nil
}

func (r *PostgresSubsectionRepository) ListBySection(ctx context.Context, sectionID string) ([]models.Subsection, error) {
	query := fmt.Sprintf(`
		SELECT id, section_id, name, sort_order, created_at, updated_at
		FROM %s
		WHERE section_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`, r.tables.Subsections)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list subsections: %w", err)
	}
	defer rows.Close()

	var subs []models.Subsection
	for rows.Next() {
		var sub models.Subsection
		err := rows.Scan(
			&sub.ID,
			&sub.SectionID,
			&sub.Name,
			&sub.SortOrder,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subsection: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subsections: %w", err)
	}

	return subs, nil
}

func (r *PostgresSubsectionRepository) Update(ctx context.Context, sub *models.Subsection) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, sort_order = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Subsections)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, sub.Name, sub.SortOrder, sub.UpdatedAt, sub.ID)
	if err != nil {
		return fmt.Errorf("update subsection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subsection %s: %w", sub.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresSubsectionRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Subsections)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete subsection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subsection %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresSubsectionRepository) DeleteBySection(ctx context.Context, sectionID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE section_id = $1
	`, r.tables.Subsections)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, sectionID); err != nil {
		return fmt.Errorf("delete subsections: %w", err)
	}

	return nil
}
