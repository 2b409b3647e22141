package pages

import (
	"context"
	"time"

	"motionpro/internal/domain/models/pages"
	"motionpro/internal/httputil"
)

// PageService owns all mutations of the page hierarchy: creation with
// order assignment, reparenting with cycle rejection, and recursive
// cascading delete.
type PageService interface {
	// CreatePage validates the request, assigns the next sibling order and
	// persists a new page
	CreatePage(ctx context.Context, req *CreatePageRequest) (*pages.Page, error)

	// GetPage retrieves a page together with its content blocks
	GetPage(ctx context.Context, id string) (*PageDetail, error)

	// UpdateHierarchy applies title/placement/property updates. A reparent
	// that would create a circular reference is rejected with no writes.
	UpdateHierarchy(ctx context.Context, id string, req *UpdatePageRequest) (*pages.Page, error)

	// DeletePage deletes a page and all of its transitive descendants,
	// children before parents
	DeletePage(ctx context.Context, id string) error
}

// TreeService materializes nested page trees from flat storage rows.
type TreeService interface {
	// WorkspaceTree builds the forest of root pages for a workspace,
	// optionally restricted to a section/subsection placement
	WorkspaceTree(ctx context.Context, workspaceID string, sectionID, subsectionID *string) ([]*pages.PageTreeNode, error)

	// Subtree builds the forest of children under an existing page
	Subtree(ctx context.Context, pageID string) ([]*pages.PageTreeNode, error)
}

// BlockService handles content-block operations
type BlockService interface {
	ListBlocks(ctx context.Context, pageID string) ([]pages.Block, error)
	CreateBlock(ctx context.Context, req *CreateBlockRequest) (*pages.Block, error)
	UpdateBlockMetadata(ctx context.Context, blockID string, metadata map[string]interface{}) (*pages.Block, error)
	DeleteBlock(ctx context.Context, blockID string) error
}

// CommentService handles page comments
type CommentService interface {
	ListComments(ctx context.Context, pageID string) ([]pages.Comment, error)
	CreateComment(ctx context.Context, req *CreateCommentRequest) (*pages.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// CreatePageRequest represents a page creation request
type CreatePageRequest struct {
	WorkspaceID  string                 `json:"workspace_id"`
	Title        string                 `json:"title"`
	ParentID     *string                `json:"parent_id,omitempty"`
	SectionID    *string                `json:"section_id,omitempty"`
	SubsectionID *string                `json:"subsection_id,omitempty"`
	Icon         string                 `json:"icon,omitempty"`
	Type         string                 `json:"type,omitempty"`
	Status       string                 `json:"status,omitempty"`
	Assignees    []string               `json:"assignees,omitempty"`
	Deadline     *time.Time             `json:"deadline,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// UpdatePageRequest represents a hierarchy/content update. ParentID,
// SectionID and SubsectionID are tri-state: absent means unchanged,
// JSON null means detach.
type UpdatePageRequest struct {
	Title        *string                 `json:"title,omitempty"`
	ParentID     httputil.OptionalString `json:"parent_id,omitempty"`
	SectionID    httputil.OptionalString `json:"section_id,omitempty"`
	SubsectionID httputil.OptionalString `json:"subsection_id,omitempty"`
	Order        *int                    `json:"order,omitempty"`
	Icon         *string                 `json:"icon,omitempty"`
	Type         *string                 `json:"type,omitempty"`
	Status       *string                 `json:"status,omitempty"`
	Assignees    *[]string               `json:"assignees,omitempty"`
	Deadline     *time.Time              `json:"deadline,omitempty"`
	Properties   map[string]interface{}  `json:"properties,omitempty"`
}

// PageDetail is a page with its content blocks
type PageDetail struct {
	Page   *pages.Page   `json:"page"`
	Blocks []pages.Block `json:"blocks"`
}

// CreateBlockRequest represents a block creation request
type CreateBlockRequest struct {
	PageID   string                 `json:"page_id"`
	Type     string                 `json:"type"`
	Content  string                 `json:"content,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	PageID   string `json:"page_id"`
	AuthorID string `json:"author_id"`
	Body     string `json:"body"`
}
