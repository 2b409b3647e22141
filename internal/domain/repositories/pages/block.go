package pages

import (
	"context"

	"motionpro/internal/domain/models/pages"
)

// BlockRepository defines data access operations for content blocks
type BlockRepository interface {
	// Create inserts a new block row
	Create(ctx context.Context, block *pages.Block) error

	// GetByID retrieves a block by ID
	GetByID(ctx context.Context, id string) (*pages.Block, error)

	// ListByPage lists a page's blocks ordered by sort_order. A non-empty
	// typeFilter restricts results to the given block types.
	ListByPage(ctx context.Context, pageID string, typeFilter []string) ([]pages.Block, error)

	// UpdateMetadata replaces a block's metadata payload
	UpdateMetadata(ctx context.Context, blockID string, metadata map[string]interface{}) error

	// MaxSortOrder returns the highest sort_order among a page's blocks,
	// or 0 if the page has none
	MaxSortOrder(ctx context.Context, pageID string) (int, error)

	// Delete removes a single block
	Delete(ctx context.Context, id string) error

	// DeleteByPage removes all blocks owned by a page
	DeleteByPage(ctx context.Context, pageID string) error
}

// CommentRepository defines data access operations for page comments
type CommentRepository interface {
	Create(ctx context.Context, comment *pages.Comment) error
	GetByID(ctx context.Context, id string) (*pages.Comment, error)
	ListByPage(ctx context.Context, pageID string) ([]pages.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByPage(ctx context.Context, pageID string) error
}
