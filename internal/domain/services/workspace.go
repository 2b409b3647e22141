package services

import (
	"context"

	"motionpro/internal/domain/models"
)

// WorkspaceService handles workspace business logic
type WorkspaceService interface {
	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)
	CreateWorkspace(ctx context.Context, req *CreateWorkspaceRequest) (*models.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, id string, req *UpdateWorkspaceRequest) (*models.Workspace, error)

	// DeleteWorkspace deletes a workspace, cascading through its sections,
	// subsections and every page tree rooted in it
	DeleteWorkspace(ctx context.Context, id string) error
}

// SectionService handles section/subsection business logic
type SectionService interface {
	ListSections(ctx context.Context, workspaceID string) ([]models.Section, error)
	CreateSection(ctx context.Context, req *CreateSectionRequest) (*models.Section, error)
	UpdateSection(ctx context.Context, id string, req *UpdateSectionRequest) (*models.Section, error)
	DeleteSection(ctx context.Context, id string) error

	ListSubsections(ctx context.Context, sectionID string) ([]models.Subsection, error)
	CreateSubsection(ctx context.Context, req *CreateSubsectionRequest) (*models.Subsection, error)
	UpdateSubsection(ctx context.Context, id string, req *UpdateSectionRequest) (*models.Subsection, error)
	DeleteSubsection(ctx context.Context, id string) error
}

// CreateWorkspaceRequest represents a workspace creation request
type CreateWorkspaceRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// UpdateWorkspaceRequest represents a workspace update request
type UpdateWorkspaceRequest struct {
	Name *string `json:"name,omitempty"`
	Icon *string `json:"icon,omitempty"`
}

// CreateSectionRequest represents a section creation request
type CreateSectionRequest struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
}

// CreateSubsectionRequest represents a subsection creation request
type CreateSubsectionRequest struct {
	SectionID string `json:"section_id"`
	Name      string `json:"name"`
}

// UpdateSectionRequest renames or reorders a section or subsection
type UpdateSectionRequest struct {
	Name  *string `json:"name,omitempty"`
	Order *int    `json:"order,omitempty"`
}
