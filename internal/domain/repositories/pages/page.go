package pages

import (
	"context"

	"motionpro/internal/domain/models/pages"
)

// PageRepository defines data access operations for pages.
// Implementations must enforce referential integrity on parent_id as a
// backstop to the service-level checks (a write racing a delete of the
// candidate parent fails rather than leaving a dangling reference).
type PageRepository interface {
	// Create inserts a new page row
	Create(ctx context.Context, page *pages.Page) error

	// GetByID retrieves a page by ID
	GetByID(ctx context.Context, id string) (*pages.Page, error)

	// Update persists all mutable fields of the page in a single write
	Update(ctx context.Context, page *pages.Page) error

	// Delete removes a single page row (never its descendants)
	Delete(ctx context.Context, id string) error

	// FindChildren lists direct children of parentID ordered by
	// (sort_order ASC, created_at ASC). A nil parentID selects root-level
	// pages and requires a filter carrying at least the workspace; the
	// filter is ignored for non-nil parents.
	FindChildren(ctx context.Context, parentID *string, filter *pages.ChildFilter) ([]pages.Page, error)

	// MaxSiblingOrder returns the highest sort_order within the sibling
	// scope, excluding excludeID when non-empty. Returns 0 when the scope
	// has no pages.
	MaxSiblingOrder(ctx context.Context, scope pages.SiblingScope, excludeID string) (int, error)

	// DetachSection clears section/subsection placement from all pages
	// referencing the section
	DetachSection(ctx context.Context, sectionID string) error

	// DetachSubsection clears subsection placement from all pages
	// referencing the subsection
	DetachSubsection(ctx context.Context, subsectionID string) error
}
