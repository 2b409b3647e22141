package pages

import (
	"context"
	"log/slog"

	models "motionpro/internal/domain/models/pages"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	pagesSvc "motionpro/internal/domain/services/pages"
)

// treeService implements the TreeService interface
type treeService struct {
	pageRepo pagesRepo.PageRepository
	logger   *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(pageRepo pagesRepo.PageRepository, logger *slog.Logger) pagesSvc.TreeService {
	return &treeService{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

// WorkspaceTree builds the forest of root pages for a workspace. Section
// and subsection filters restrict only the root set; descendants are
// scoped by ancestry and need no filter.
func (s *treeService) WorkspaceTree(ctx context.Context, workspaceID string, sectionID, subsectionID *string) ([]*models.PageTreeNode, error) {
	filter := &models.ChildFilter{
		WorkspaceID:  workspaceID,
		SectionID:    sectionID,
		SubsectionID: subsectionID,
	}

	forest, count, err := s.buildForest(ctx, nil, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Info("workspace tree built",
		"workspace_id", workspaceID,
		"page_count", count,
	)

	return forest, nil
}

// Subtree builds the forest of children under an existing page
func (s *treeService) Subtree(ctx context.Context, pageID string) ([]*models.PageTreeNode, error) {
	// Resolve first so a missing root reports not-found, not an empty tree
	page, err := s.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		return nil, err
	}

	forest, count, err := s.buildForest(ctx, &page.ID, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("subtree built",
		"page_id", pageID,
		"page_count", count,
	)

	return forest, nil
}

// buildForest recursively materializes the ordered child trees under
// parentID. Per-level ordering (sort_order, created_at) comes from the
// repository; recursion preserves it depth-first. Any storage error
// aborts the whole build - no partial tree is returned. Termination is
// guaranteed because parent links are acyclic.
func (s *treeService) buildForest(ctx context.Context, parentID *string, filter *models.ChildFilter) ([]*models.PageTreeNode, int, error) {
	children, err := s.pageRepo.FindChildren(ctx, parentID, filter)
	if err != nil {
		return nil, 0, err
	}

	forest := make([]*models.PageTreeNode, 0, len(children))
	total := len(children)

	for i := range children {
		node := models.NewTreeNode(&children[i])

		nested, count, err := s.buildForest(ctx, &children[i].ID, nil)
		if err != nil {
			return nil, 0, err
		}
		node.NestedPages = nested
		total += count

		forest = append(forest, node)
	}

	return forest, total, nil
}
