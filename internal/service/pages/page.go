package pages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"motionpro/internal/blocktypes"
	"motionpro/internal/config"
	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	"motionpro/internal/domain/repositories"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	pagesSvc "motionpro/internal/domain/services/pages"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type pageService struct {
	pageRepo      pagesRepo.PageRepository
	blockRepo     pagesRepo.BlockRepository
	commentRepo   pagesRepo.CommentRepository
	workspaceRepo repositories.WorkspaceRepository
	blockTypes    *blocktypes.Registry
	txManager     repositories.TransactionManager
	logger        *slog.Logger
}

// NewPageService creates a new page service
func NewPageService(
	pageRepo pagesRepo.PageRepository,
	blockRepo pagesRepo.BlockRepository,
	commentRepo pagesRepo.CommentRepository,
	workspaceRepo repositories.WorkspaceRepository,
	blockTypes *blocktypes.Registry,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) pagesSvc.PageService {
	return &pageService{
		pageRepo:      pageRepo,
		blockRepo:     blockRepo,
		commentRepo:   commentRepo,
		workspaceRepo: workspaceRepo,
		blockTypes:    blockTypes,
		txManager:     txManager,
		logger:        logger,
	}
}

// CreatePage validates the request, assigns the next sibling order and
// persists a new page
func (s *pageService) CreatePage(ctx context.Context, req *pagesSvc.CreatePageRequest) (*models.Page, error) {
	// Normalize empty string to nil for root-level pages
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}
	req.Title = strings.TrimSpace(req.Title)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Placement scope must exist before any write
	if _, err := s.workspaceRepo.GetByID(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}
	if req.ParentID != nil {
		parent, err := s.pageRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.WorkspaceID != req.WorkspaceID {
			return nil, fmt.Errorf("%w: parent page belongs to a different workspace", domain.ErrValidation)
		}
	}

	now := time.Now()
	page := &models.Page{
		ID:           uuid.NewString(),
		WorkspaceID:  req.WorkspaceID,
		SectionID:    req.SectionID,
		SubsectionID: req.SubsectionID,
		ParentID:     req.ParentID,
		Title:        req.Title,
		Icon:         req.Icon,
		Type:         models.PageType(req.Type),
		Status:       req.Status,
		Assignees:    req.Assignees,
		Deadline:     req.Deadline,
		Properties:   req.Properties,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyPageDefaults(page)

	// Order computation and insert share a transaction; concurrent
	// creators may still tie on sort_order, resolved by created_at at
	// read time
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		max, err := s.pageRepo.MaxSiblingOrder(txCtx, siblingScopeOf(page), "")
		if err != nil {
			return err
		}
		page.SortOrder = max + 1
		return s.pageRepo.Create(txCtx, page)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("page created",
		"id", page.ID,
		"title", page.Title,
		"workspace_id", page.WorkspaceID,
		"parent_id", page.ParentID,
		"order", page.SortOrder,
	)

	return page, nil
}

// GetPage retrieves a page together with its content blocks
func (s *pageService) GetPage(ctx context.Context, id string) (*pagesSvc.PageDetail, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.ListByPage(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	return &pagesSvc.PageDetail{Page: page, Blocks: blocks}, nil
}

// UpdateHierarchy applies title/placement/property updates to a page.
// All validation (parent existence, cycle detection) happens before the
// single persisted write, so a rejected update leaves storage untouched.
func (s *pageService) UpdateHierarchy(ctx context.Context, id string, req *pagesSvc.UpdatePageRequest) (*models.Page, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titleChanged := false
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		titleChanged = title != page.Title
		page.Title = title
	}

	reparented := false
	if req.ParentID.Present {
		newParent := req.ParentID.Value
		// Empty string detaches to root, same as explicit null
		if newParent != nil && *newParent == "" {
			newParent = nil
		}

		if newParent != nil {
			parent, err := s.pageRepo.GetByID(ctx, *newParent)
			if err != nil {
				return nil, err
			}
			if parent.WorkspaceID != page.WorkspaceID {
				return nil, fmt.Errorf("%w: parent page belongs to a different workspace", domain.ErrValidation)
			}
			if err := s.ensureNoCycle(ctx, id, *newParent); err != nil {
				return nil, err
			}
			page.ParentID = newParent
			s.logger.Debug("moving page to new parent", "page_id", id, "parent_id", *newParent)
		} else {
			page.ParentID = nil
			s.logger.Debug("moving page to root", "page_id", id)
		}
		reparented = true
	}

	// Placement scope changes only when explicitly requested
	if req.SectionID.Present {
		page.SectionID = req.SectionID.Value
	}
	if req.SubsectionID.Present {
		page.SubsectionID = req.SubsectionID.Value
	}

	if req.Order != nil {
		page.SortOrder = *req.Order
	} else if reparented {
		// Moved page lands at the end of its new sibling list
		max, err := s.pageRepo.MaxSiblingOrder(ctx, siblingScopeOf(page), page.ID)
		if err != nil {
			return nil, err
		}
		page.SortOrder = max + 1
	}

	if req.Icon != nil {
		page.Icon = *req.Icon
	}
	if req.Type != nil {
		page.Type = models.PageType(*req.Type)
	}
	if req.Status != nil {
		page.Status = *req.Status
	}
	if req.Assignees != nil {
		page.Assignees = *req.Assignees
	}
	if req.Deadline != nil {
		page.Deadline = req.Deadline
	}
	if req.Properties != nil {
		page.Properties = req.Properties
	}

	page.UpdatedAt = time.Now()

	if err := s.pageRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	// Best-effort enrichment: refresh suggested filenames on file-bearing
	// blocks after a rename. Failures are logged, never surfaced.
	if titleChanged {
		if err := s.refreshSuggestedFileNames(ctx, page.ID, page.Title); err != nil {
			s.logger.Warn("failed to refresh suggested filenames",
				"page_id", page.ID,
				"error", err,
			)
		}
	}

	s.logger.Info("page updated",
		"id", page.ID,
		"title", page.Title,
		"parent_id", page.ParentID,
		"order", page.SortOrder,
	)

	return page, nil
}

// DeletePage deletes a page and all of its transitive descendants.
// Children are queried fresh from storage and deleted before their
// parent, so a mid-cascade failure never orphans a subtree root.
func (s *pageService) DeletePage(ctx context.Context, id string) error {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.deleteSubtree(ctx, id); err != nil {
		return err
	}

	s.logger.Info("page deleted",
		"id", id,
		"title", page.Title,
		"workspace_id", page.WorkspaceID,
	)

	return nil
}

// deleteSubtree removes a page, its blocks, its comments and every
// transitive descendant, depth-first
func (s *pageService) deleteSubtree(ctx context.Context, pageID string) error {
	children, err := s.pageRepo.FindChildren(ctx, &pageID, nil)
	if err != nil {
		return fmt.Errorf("failed to list child pages: %w", err)
	}

	for _, child := range children {
		if err := s.deleteSubtree(ctx, child.ID); err != nil {
			return err
		}
	}

	if err := s.commentRepo.DeleteByPage(ctx, pageID); err != nil {
		return err
	}
	if err := s.blockRepo.DeleteByPage(ctx, pageID); err != nil {
		return err
	}
	if err := s.pageRepo.Delete(ctx, pageID); err != nil {
		return fmt.Errorf("failed to delete page %s: %w", pageID, err)
	}

	s.logger.Debug("deleted page", "id", pageID)
	return nil
}

// ensureNoCycle rejects a reparent that would make pageID its own
// ancestor. The walk keeps a visited set seeded with pageID, so it
// terminates by detecting a revisit even if storage already contains a
// cycle; otherwise it is bounded by tree depth.
func (s *pageService) ensureNoCycle(ctx context.Context, pageID, candidateParentID string) error {
	if candidateParentID == pageID {
		return &domain.InvalidParentError{
			Message: "cannot move page under itself",
			PageID:  pageID,
			Parent:  candidateParentID,
		}
	}

	visited := map[string]bool{pageID: true}
	currentID := candidateParentID

	for {
		if visited[currentID] {
			return &domain.InvalidParentError{
				Message: "cannot move page under its own descendant: would create circular reference",
				PageID:  pageID,
				Parent:  candidateParentID,
			}
		}
		visited[currentID] = true

		current, err := s.pageRepo.GetByID(ctx, currentID)
		if err != nil {
			return err
		}
		if current.ParentID == nil {
			// Reached a root without revisiting: safe
			return nil
		}
		currentID = *current.ParentID
	}
}

// refreshSuggestedFileNames recomputes suggestedFileName metadata on all
// file-bearing blocks of the page that carry an originalFileName
func (s *pageService) refreshSuggestedFileNames(ctx context.Context, pageID, title string) error {
	blocks, err := s.blockRepo.ListByPage(ctx, pageID, s.blockTypes.FileBearing())
	if err != nil {
		return err
	}

	for _, block := range blocks {
		original, ok := block.Metadata[models.MetaOriginalFileName].(string)
		if !ok || original == "" {
			continue
		}

		metadata := make(map[string]interface{}, len(block.Metadata)+1)
		for k, v := range block.Metadata {
			metadata[k] = v
		}
		metadata[models.MetaSuggestedFileName] = SuggestedFileName(title, original)

		if err := s.blockRepo.UpdateMetadata(ctx, block.ID, metadata); err != nil {
			// Enrichment is best-effort per block; keep going
			s.logger.Warn("failed to update block metadata",
				"block_id", block.ID,
				"error", err,
			)
		}
	}

	return nil
}

// siblingScopeOf derives the sort_order scope for a page's current placement
func siblingScopeOf(page *models.Page) models.SiblingScope {
	return models.SiblingScope{
		WorkspaceID:  page.WorkspaceID,
		ParentID:     page.ParentID,
		SectionID:    page.SectionID,
		SubsectionID: page.SubsectionID,
	}
}

// applyPageDefaults fills zero-value fields on a freshly built page
func applyPageDefaults(page *models.Page) {
	if page.Icon == "" {
		page.Icon = config.DefaultPageIcon
	}
	if page.Type == "" {
		page.Type = models.PageTypePage
	}
	if page.Assignees == nil {
		page.Assignees = []string{}
	}
	if page.Properties == nil {
		page.Properties = map[string]interface{}{}
	}
}

// validateCreateRequest validates a page creation request
func (s *pageService) validateCreateRequest(req *pagesSvc.CreatePageRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.WorkspaceID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxPageTitleLength),
		),
		validation.Field(&req.Type,
			validation.In("", string(models.PageTypePage), string(models.PageTypeDatabase)),
		),
	)
}

// validateUpdateRequest validates a page update request
func (s *pageService) validateUpdateRequest(req *pagesSvc.UpdatePageRequest) error {
	// At least one field must be provided
	if req.Title == nil && !req.ParentID.Present && !req.SectionID.Present &&
		!req.SubsectionID.Present && req.Order == nil && req.Icon == nil &&
		req.Type == nil && req.Status == nil && req.Assignees == nil &&
		req.Deadline == nil && req.Properties == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	rules := []*validation.FieldRules{}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return fmt.Errorf("title cannot be empty")
		}
		rules = append(rules,
			validation.Field(&req.Title,
				validation.Length(1, config.MaxPageTitleLength),
			),
		)
	}

	if req.Type != nil {
		rules = append(rules,
			validation.Field(&req.Type,
				validation.In(string(models.PageTypePage), string(models.PageTypeDatabase)),
			),
		)
	}

	if len(rules) == 0 {
		return nil
	}
	return validation.ValidateStruct(req, rules...)
}
