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
	"motionpro/internal/domain/repositories"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	"motionpro/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type sectionService struct {
	workspaceRepo  repositories.WorkspaceRepository
	sectionRepo    repositories.SectionRepository
	subsectionRepo repositories.SubsectionRepository
	pageRepo       pagesRepo.PageRepository
	logger         *slog.Logger
}

// NewSectionService creates a new section service
func NewSectionService(
	workspaceRepo repositories.WorkspaceRepository,
	sectionRepo repositories.SectionRepository,
	subsectionRepo repositories.SubsectionRepository,
	pageRepo pagesRepo.PageRepository,
	logger *slog.Logger,
) services.SectionService {
	return &sectionService{
		workspaceRepo:  workspaceRepo,
		sectionRepo:    sectionRepo,
		subsectionRepo: subsectionRepo,
		pageRepo:       pageRepo,
		logger:         logger,
	}
}

// ListSections retrieves the sections of a workspace in display order
func (s *sectionService) ListSections(ctx context.Context, workspaceID string) ([]models.Section, error) {
	if _, err := s.workspaceRepo.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.sectionRepo.ListByWorkspace(ctx, workspaceID)
}

// CreateSection creates a section at the end of the workspace's section list
func (s *sectionService) CreateSection(ctx context.Context, req *services.CreateSectionRequest) (*models.Section, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.WorkspaceID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxSectionNameLength),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.workspaceRepo.GetByID(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}

	siblings, err := s.sectionRepo.ListByWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return nil, err
	}
	maxOrder := 0
	for _, sib := range siblings {
		if sib.SortOrder > maxOrder {
			maxOrder = sib.SortOrder
		}
	}

	now := time.Now()
	section := &models.Section{
		ID:          uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		SortOrder:   maxOrder + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}

	s.logger.Info("section created", "id", section.ID, "workspace_id", section.WorkspaceID)
	return section, nil
}

// UpdateSection renames or reorders a section
func (s *sectionService) UpdateSection(ctx context.Context, id string, req *services.UpdateSectionRequest) (*models.Section, error) {
	if req.Name == nil && req.Order == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}

	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > config.MaxSectionNameLength {
			return nil, fmt.Errorf("%w: invalid section name", domain.ErrValidation)
		}
		section.Name = name
	}
	if req.Order != nil {
		section.SortOrder = *req.Order
	}
	section.UpdatedAt = time.Now()

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.logger.Info("section updated", "id", section.ID)
	return section, nil
}

// DeleteSection deletes a section and its subsections. Pages placed in the
// section are detached back to plain workspace roots, never deleted.
func (s *sectionService) DeleteSection(ctx context.Context, id string) error {
	if _, err := s.sectionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.pageRepo.DetachSection(ctx, id); err != nil {
		return err
	}
	if err := s.subsectionRepo.DeleteBySection(ctx, id); err != nil {
		return err
	}
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("section deleted", "id", id)
	return nil
}

// ListSubsections retrieves the subsections of a section in display order
func (s *sectionService) ListSubsections(ctx context.Context, sectionID string) ([]models.Subsection, error) {
	if _, err := s.sectionRepo.GetByID(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.subsectionRepo.ListBySection(ctx, sectionID)
}

// CreateSubsection creates a subsection at the end of the section's list
func (s *sectionService) CreateSubsection(ctx context.Context, req *services.CreateSubsectionRequest) (*models.Subsection, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SectionID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxSectionNameLength),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.sectionRepo.GetByID(ctx, req.SectionID); err != nil {
		return nil, err
	}

	siblings, err := s.subsectionRepo.ListBySection(ctx, req.SectionID)
	if err != nil {
		return nil, err
	}
	maxOrder := 0
	for _, sib := range siblings {
		if sib.SortOrder > maxOrder {
			maxOrder = sib.SortOrder
		}
	}

	now := time.Now()
	sub := &models.Subsection{
		ID:        uuid.NewString(),
		SectionID: req.SectionID,
		Name:      req.Name,
		SortOrder: maxOrder + 1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subsectionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("subsection created", "id", sub.ID, "section_id", sub.SectionID)
	return sub, nil
}

// UpdateSubsection renames or reorders a subsection
func (s *sectionService) UpdateSubsection(ctx context.Context, id string, req *services.UpdateSectionRequest) (*models.Subsection, error) {
	if req.Name == nil && req.Order == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}

	sub, err := s.subsectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > config.MaxSectionNameLength {
			return nil, fmt.Errorf("%w: invalid subsection name", domain.ErrValidation)
		}
		sub.Name = name
	}
	if req.Order != nil {
		sub.SortOrder = *req.Order
	}
	sub.UpdatedAt = time.Now()

	if err := s.subsectionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("subsection updated", "id", sub.ID)
	return sub, nil
}

// DeleteSubsection deletes a subsection, detaching any pages placed in it
func (s *sectionService) DeleteSubsection(ctx context.Context, id string) error {
	if _, err := s.subsectionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.pageRepo.DetachSubsection(ctx, id); err != nil {
		return err
	}
	if err := s.subsectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("subsection deleted", "id", id)
	return nil
}
