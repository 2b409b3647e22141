package repositories

import (
	"context"

	"motionpro/internal/domain/models"
)

// WorkspaceRepository defines data access operations for workspaces
type WorkspaceRepository interface {
	// Create creates a new workspace
	Create(ctx context.Context, ws *models.Workspace) error

	// GetByID retrieves a workspace by ID
	GetByID(ctx context.Context, id string) (*models.Workspace, error)

	// List retrieves all workspaces ordered by creation time
	List(ctx context.Context) ([]models.Workspace, error)

	// Update updates a workspace
	Update(ctx context.Context, ws *models.Workspace) error

	// Delete deletes a workspace
	Delete(ctx context.Context, id string) error
}

// SectionRepository defines data access operations for sections
type SectionRepository interface {
	Create(ctx context.Context, section *models.Section) error
	GetByID(ctx context.Context, id string) (*models.Section, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]models.Section, error)
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id string) error
}

// SubsectionRepository defines data access operations for subsections
type SubsectionRepository interface {
	Create(ctx context.Context, sub *models.Subsection) error
	GetByID(ctx context.Context, id string) (*models.Subsection, error)
	ListBySection(ctx context.Context, sectionID string) ([]models.Subsection, error)
	Update(ctx context.Context, sub *models.Subsection) error
	Delete(ctx context.Context, id string) error
	DeleteBySection(ctx context.Context, sectionID string) error
}
