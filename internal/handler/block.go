package handler

import (
	"log/slog"
	"net/http"

	pagesSvc "motionpro/internal/domain/services/pages"
	"motionpro/internal/httputil"
)

// BlockHandler handles content-block HTTP requests
type BlockHandler struct {
	blockService pagesSvc.BlockService
	logger       *slog.Logger
}

// NewBlockHandler creates a new block handler
func NewBlockHandler(blockService pagesSvc.BlockService, logger *slog.Logger) *BlockHandler {
	return &BlockHandler{
		blockService: blockService,
		logger:       logger,
	}
}

// ListBlocks returns a page's blocks in display order
// GET /api/pages/{id}/blocks
func (h *BlockHandler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("id")
	if pageID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Page ID is required")
		return
	}

	blocks, err := h.blockService.ListBlocks(r.Context(), pageID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, blocks)
}

// CreateBlock appends a block to a page
// POST /api/pages/{id}/blocks
func (h *BlockHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("id")
	if pageID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Page ID is required")
		return
	}

	var req pagesSvc.CreateBlockRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.PageID = pageID

	block, err := h.blockService.CreateBlock(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, block)
}

// UpdateBlockMetadata replaces a block's metadata map
// PATCH /api/blocks/{id}/metadata
func (h *BlockHandler) UpdateBlockMetadata(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Block ID is required")
		return
	}

	var metadata map[string]interface{}
	if err := httputil.ParseJSON(w, r, &metadata); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	block, err := h.blockService.UpdateBlockMetadata(r.Context(), id, metadata)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, block)
}

// DeleteBlock deletes a single block
// DELETE /api/blocks/{id}
func (h *BlockHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Block ID is required")
		return
	}

	if err := h.blockService.DeleteBlock(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
