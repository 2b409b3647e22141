package pages

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	"motionpro/internal/repository/postgres"
)

// PostgresPageRepository implements the PageRepository interface
type PostgresPageRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewPageRepository creates a new page repository
func NewPageRepository(config *postgres.RepositoryConfig) pagesRepo.PageRepository {
	return &PostgresPageRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const pageColumns = `id, workspace_id, section_id, subsection_id, parent_id, title, icon, type,
		status, assignees, deadline, properties, sort_order, created_at, updated_at`

// Create inserts a new page row
func (r *PostgresPageRepository) Create(ctx context.Context, page *models.Page) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, r.tables.Pages, pageColumns)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		page.ID,
		page.WorkspaceID,
		page.SectionID,
		page.SubsectionID,
		page.ParentID,
		page.Title,
		page.Icon,
		page.Type,
		page.Status,
		page.Assignees,  // pgx handles slice -> JSONB
		page.Deadline,
		page.Properties, // pgx handles map -> JSONB (nil becomes NULL)
		page.SortOrder,
		page.CreatedAt,
		page.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return fmt.Errorf("page %s: %w", page.ID, domain.ErrConflict)
		}
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("parent page %v: %w", page.ParentID, domain.ErrNotFound)
		}
		return fmt.Errorf("create page: %w", err)
	}

	return nil
}

// GetByID retrieves a page by ID
func (r *PostgresPageRepository) GetByID(ctx context.Context, id string) (*models.Page, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, pageColumns, r.tables.Pages)

	executor := postgres.GetExecutor(ctx, r.pool)
	page, err := scanPage(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get page: %w", err)
	}

	return page, nil
}

// Update persists all mutable fields of the page in a single write
func (r *PostgresPageRepository) Update(ctx context.Context, page *models.Page) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET section_id = $1, subsection_id = $2, parent_id = $3, title = $4,
			icon = $5, type = $6, status = $7, assignees = $8, deadline = $9,
			properties = $10, sort_order = $11, updated_at = $12
		WHERE id = $13
	`, r.tables.Pages)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		page.SectionID,
		page.SubsectionID,
		page.ParentID,
		page.Title,
		page.Icon,
		page.Type,
		page.Status,
		page.Assignees,
		page.Deadline,
		page.Properties,
		page.SortOrder,
		page.UpdatedAt,
		page.ID,
	)

	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			// Backstop: the candidate parent vanished between validation
			// and write
			return fmt.Errorf("parent page %v: %w", page.ParentID, domain.ErrNotFound)
		}
		return fmt.Errorf("update page: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("page %s: %w", page.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a single page row (never its descendants)
func (r *PostgresPageRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Pages)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("page %s still has children: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete page: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// FindChildren lists direct children ordered by (sort_order, created_at)
func (r *PostgresPageRepository) FindChildren(ctx context.Context, parentID *string, filter *models.ChildFilter) ([]models.Page, error) {
	var query string
	var args []interface{}

	if parentID != nil {
		// Descendants are already scoped by ancestry; no filter applies
		query = fmt.Sprintf(`
			SELECT %s
			FROM %s
			WHERE parent_id = $1
			ORDER BY sort_order ASC, created_at ASC
		`, pageColumns, r.tables.Pages)
		args = append(args, *parentID)
	} else {
		if filter == nil {
			return nil, fmt.Errorf("root-level child query requires a workspace filter: %w", domain.ErrValidation)
		}

		where := "workspace_id = $1 AND parent_id IS NULL"
		args = append(args, filter.WorkspaceID)
		if filter.SectionID != nil {
			args = append(args, *filter.SectionID)
			where += fmt.Sprintf(" AND section_id = $%d", len(args))
		}
		if filter.SubsectionID != nil {
			args = append(args, *filter.SubsectionID)
			where += fmt.Sprintf(" AND subsection_id = $%d", len(args))
		}

		query = fmt.Sprintf(`
			SELECT %s
			FROM %s
			WHERE %s
			ORDER BY sort_order ASC, created_at ASC
		`, pageColumns, r.tables.Pages, where)
	}

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list page children: %w", err)
	}
	defer rows.Close()

	var result []models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		result = append(result, *page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}

	return result, nil
}

// MaxSiblingOrder returns the highest sort_order within the sibling scope
func (r *PostgresPageRepository) MaxSiblingOrder(ctx context.Context, scope models.SiblingScope, excludeID string) (int, error) {
	var query string
	var args []interface{}

	if scope.ParentID != nil {
		query = fmt.Sprintf(`
			SELECT COALESCE(MAX(sort_order), 0)
			FROM %s
			WHERE parent_id = $1 AND id <> $2
		`, r.tables.Pages)
		args = append(args, *scope.ParentID, excludeID)
	} else {
		// Root-level siblings share the (workspace, section, subsection)
		// placement; IS NOT DISTINCT FROM gives null-safe equality
		query = fmt.Sprintf(`
			SELECT COALESCE(MAX(sort_order), 0)
			FROM %s
			WHERE workspace_id = $1 AND parent_id IS NULL
				AND section_id IS NOT DISTINCT FROM $2
				AND subsection_id IS NOT DISTINCT FROM $3
				AND id <> $4
		`, r.tables.Pages)
		args = append(args, scope.WorkspaceID, scope.SectionID, scope.SubsectionID, excludeID)
	}

	var max int
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, args...).Scan(&max); err != nil {
		return 0, fmt.Errorf("max sibling order: %w", err)
	}

	return max, nil
}

// DetachSection clears section/subsection placement from pages in the section
func (r *PostgresPageRepository) DetachSection(ctx context.Context, sectionID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET section_id = NULL, subsection_id = NULL
		WHERE section_id = $1
	`, r.tables.Pages)

	executor := postgres.GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, sectionID); err != nil {
		return fmt.Errorf("detach section: %w", err)
	}

	return nil
}

// DetachSubsection clears subsection placement from pages in the subsection
func (r *PostgresPageRepository) DetachSubsection(ctx context.Context, subsectionID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET subsection_id = NULL
		WHERE subsection_id = $1
	`, r.tables.Pages)

	executor := postgres.GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, subsectionID); err != nil {
		return fmt.Errorf("detach subsection: %w", err)
	}

	return nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPage(row rowScanner) (*models.Page, error) {
	var page models.Page
	err := row.Scan(
		&page.ID,
		&page.WorkspaceID,
		&page.SectionID,
		&page.SubsectionID,
		&page.ParentID,
		&page.Title,
		&page.Icon,
		&page.Type,
		&page.Status,
		&page.Assignees,  // pgx handles JSONB -> slice
		&page.Deadline,
		&page.Properties, // pgx handles JSONB -> map
		&page.SortOrder,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
