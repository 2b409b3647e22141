package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	"motionpro/internal/repository/postgres"
)

// PostgresBlockRepository implements the BlockRepository interface
type PostgresBlockRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(config *postgres.RepositoryConfig) pagesRepo.BlockRepository {
	return &PostgresBlockRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new block row
func (r *PostgresBlockRepository) Create(ctx context.Context, block *models.Block) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, page_id, type, content, metadata, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Blocks)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		block.ID,
		block.PageID,
		block.Type,
		block.Content,
		block.Metadata, // pgx handles map -> JSONB (nil becomes NULL)
		block.SortOrder,
		block.CreatedAt,
		block.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("page %s: %w", block.PageID, domain.ErrNotFound)
		}
		return fmt.Errorf("create block: %w", err)
	}

	return nil
}

// GetByID retrieves a block by ID
func (r *PostgresBlockRepository) GetByID(ctx context.Context, id string) (*models.Block, error) {
	query := fmt.Sprintf(`
		SELECT id, page_id, type, content, metadata, sort_order, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Blocks)

	var block models.Block
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&block.ID,
		&block.PageID,
		&block.Type,
		&block.Content,
		&block.Metadata,
		&block.SortOrder,
		&block.CreatedAt,
		&block.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get block: %w", err)
	}

	return &block, nil
}

// ListByPage lists a page's blocks ordered by sort_order
func (r *PostgresBlockRepository) ListByPage(ctx context.Context, pageID string, typeFilter []string) ([]models.Block, error) {
	var query string
	var args []interface{}

	if len(typeFilter) == 0 {
		query = fmt.Sprintf(`
			SELECT id, page_id, type, content, metadata, sort_order, created_at, updated_at
			FROM %s
			WHERE page_id = $1
			ORDER BY sort_order ASC, created_at ASC
		`, r.tables.Blocks)
		args = append(args, pageID)
	} else {
		query = fmt.Sprintf(`
			SELECT id, page_id, type, content, metadata, sort_order, created_at, updated_at
			FROM %s
			WHERE page_id = $1 AND type = ANY($2)
			ORDER BY sort_order ASC, created_at ASC
		`, r.tables.Blocks)
		args = append(args, pageID, typeFilter)
	}

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.Block
	for rows.Next() {
		var block models.Block
		err := rows.Scan(
			&block.ID,
			&block.PageID,
			&block.Type,
			&block.Content,
			&block.Metadata,
			&block.SortOrder,
			&block.CreatedAt,
			&block.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}

	return blocks, nil
}

// UpdateMetadata replaces a block's metadata payload
func (r *PostgresBlockRepository) UpdateMetadata(ctx context.Context, blockID string, metadata map[string]interface{}) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET metadata = $1, updated_at = $2
		WHERE id = $3
	`, r.tables.Blocks)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, metadata, time.Now(), blockID)
	if err != nil {
		return fmt.Errorf("update block metadata: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("block %s: %w", blockID, domain.ErrNotFound)
	}

	return nil
}

// MaxSortOrder returns the highest sort_order among a page's blocks
func (r *PostgresBlockRepository) MaxSortOrder(ctx context.Context, pageID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(sort_order), 0)
		FROM %s
		WHERE page_id = $1
	`, r.tables.Blocks)

	var max int
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, pageID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max block order: %w", err)
	}

	return max, nil
}

// Delete removes a single block
func (r *PostgresBlockRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Blocks)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByPage removes all blocks owned by a page. Zero affected rows is
// not an error; cascade retries are idempotent.
func (r *PostgresBlockRepository) DeleteByPage(ctx context.Context, pageID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE page_id = $1
	`, r.tables.Blocks)

	executor := postgres.GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, pageID); err != nil {
		return fmt.Errorf("delete page blocks: %w", err)
	}

	return nil
}
