package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"motionpro/internal/config"
	"motionpro/internal/domain"
	"motionpro/internal/domain/models"
	modelsPages "motionpro/internal/domain/models/pages"
	"motionpro/internal/domain/repositories"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	"motionpro/internal/domain/services"
	pagesSvc "motionpro/internal/domain/services/pages"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type workspaceService struct {
	workspaceRepo  repositories.WorkspaceRepository
	sectionRepo    repositories.SectionRepository
	subsectionRepo repositories.SubsectionRepository
	pageRepo       pagesRepo.PageRepository
	pageService    pagesSvc.PageService // For delegating page-tree deletion (SRP)
	logger         *slog.Logger
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	workspaceRepo repositories.WorkspaceRepository,
	sectionRepo repositories.SectionRepository,
	subsectionRepo repositories.SubsectionRepository,
	pageRepo pagesRepo.PageRepository,
	pageService pagesSvc.PageService,
	logger *slog.Logger,
) services.WorkspaceService {
	return &workspaceService{
		workspaceRepo:  workspaceRepo,
		sectionRepo:    sectionRepo,
		subsectionRepo: subsectionRepo,
		pageRepo:       pageRepo,
		pageService:    pageService,
		logger:         logger,
	}
}

// ListWorkspaces retrieves all workspaces
func (s *workspaceService) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	return s.workspaceRepo.List(ctx)
}

// CreateWorkspace creates a new workspace
func (s *workspaceService) CreateWorkspace(ctx context.Context, req *services.CreateWorkspaceRequest) (*models.Workspace, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxWorkspaceNameLength),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	ws := &models.Workspace{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.workspaceRepo.Create(ctx, ws); err != nil {
		return nil, err
	}

	s.logger.Info("workspace created", "id", ws.ID, "name", ws.Name)
	return ws, nil
}

// GetWorkspace retrieves a workspace by ID
func (s *workspaceService) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	return s.workspaceRepo.GetByID(ctx, id)
}

// UpdateWorkspace renames a workspace or changes its icon
func (s *workspaceService) UpdateWorkspace(ctx context.Context, id string, req *services.UpdateWorkspaceRequest) (*models.Workspace, error) {
	if req.Name == nil && req.Icon == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}

	ws, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > config.MaxWorkspaceNameLength {
			return nil, fmt.Errorf("%w: invalid workspace name", domain.ErrValidation)
		}
		ws.Name = name
	}
	if req.Icon != nil {
		ws.Icon = *req.Icon
	}
	ws.UpdatedAt = time.Now()

	if err := s.workspaceRepo.Update(ctx, ws); err != nil {
		return nil, err
	}

	s.logger.Info("workspace updated", "id", ws.ID, "name", ws.Name)
	return ws, nil
}

// DeleteWorkspace deletes a workspace, cascading through its page trees,
// sections and subsections. Page subtrees are deleted via the page
// service so block/comment cleanup follows the same path everywhere.
func (s *workspaceService) DeleteWorkspace(ctx context.Context, id string) error {
	ws, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Root pages first; each delete cascades through its own subtree
	roots, err := s.pageRepo.FindChildren(ctx, nil, &modelsPages.ChildFilter{WorkspaceID: id})
	if err != nil {
		return fmt.Errorf("failed to list root pages: %w", err)
	}
	for _, root := range roots {
		if err := s.pageService.DeletePage(ctx, root.ID); err != nil {
			return err
		}
	}

	sections, err := s.sectionRepo.ListByWorkspace(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}
	for _, section := range sections {
		if err := s.subsectionRepo.DeleteBySection(ctx, section.ID); err != nil {
			return err
		}
		if err := s.sectionRepo.Delete(ctx, section.ID); err != nil {
			return err
		}
	}

	if err := s.workspaceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("workspace deleted", "id", id, "name", ws.Name)
	return nil
}
