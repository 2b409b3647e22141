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

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *postgres.RepositoryConfig) pagesRepo.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new comment row
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, page_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Comments)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		comment.ID,
		comment.PageID,
		comment.AuthorID,
		comment.Body,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("page %s: %w", comment.PageID, domain.ErrNotFound)
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT id, page_id, author_id, body, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Comments)

	var comment models.Comment
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PageID,
		&comment.AuthorID,
		&comment.Body,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// ListByPage lists a page's comments oldest first
func (r *PostgresCommentRepository) ListByPage(ctx context.Context, pageID string) ([]models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT id, page_id, author_id, body, created_at, updated_at
		FROM %s
		WHERE page_id = $1
		ORDER BY created_at ASC
	`, r.tables.Comments)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, pageID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PageID,
			&comment.AuthorID,
			&comment.Body,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// Delete removes a single comment
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Comments)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByPage removes all comments on a page. Zero affected rows is not
// an error; cascade retries are idempotent.
func (r *PostgresCommentRepository) DeleteByPage(ctx context.Context, pageID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE page_id = $1
	`, r.tables.Comments)

	executor := postgres.GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, pageID); err != nil {
		return fmt.Errorf("delete page comments: %w", err)
	}

	return nil
}
