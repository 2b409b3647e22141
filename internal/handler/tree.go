package handler

import (
	"log/slog"
	"net/http"

	pagesSvc "motionpro/internal/domain/services/pages"
	"motionpro/internal/httputil"
)

// TreeHandler handles HTTP requests for nested page trees
type TreeHandler struct {
	treeService pagesSvc.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService pagesSvc.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetWorkspaceTree returns the nested page tree for a workspace.
// Optional section_id/subsection_id query params restrict the roots to a
// placement; descendants are included regardless of their own placement.
// GET /api/workspaces/{id}/tree
func (h *TreeHandler) GetWorkspaceTree(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("id")
	if workspaceID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Workspace ID is required")
		return
	}

	var sectionID, subsectionID *string
	if v := r.URL.Query().Get("section_id"); v != "" {
		sectionID = &v
	}
	if v := r.URL.Query().Get("subsection_id"); v != "" {
		subsectionID = &v
	}

	tree, err := h.treeService.WorkspaceTree(r.Context(), workspaceID, sectionID, subsectionID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, tree)
}

// GetSubtree returns the nested tree below an existing page
// GET /api/pages/{id}/tree
func (h *TreeHandler) GetSubtree(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("id")
	if pageID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Page ID is required")
		return
	}

	tree, err := h.treeService.Subtree(r.Context(), pageID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, tree)
}
