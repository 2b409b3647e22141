package handler

import (
	"log/slog"
	"net/http"

	pagesSvc "motionpro/internal/domain/services/pages"
	"motionpro/internal/httputil"
)

// CommentHandler handles page-comment HTTP requests
type CommentHandler struct {
	commentService pagesSvc.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService pagesSvc.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListComments returns a page's comments, oldest first
// GET /api/pages/{id}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("id")
	if pageID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Page ID is required")
		return
	}

	comments, err := h.commentService.ListComments(r.Context(), pageID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, comments)
}

// CreateComment adds a comment to a page. The author is taken from the
// authenticated user, not the request body.
// POST /api/pages/{id}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("id")
	if pageID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Page ID is required")
		return
	}

	var req pagesSvc.CreateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.PageID = pageID
	req.AuthorID = httputil.GetUserID(r)

	comment, err := h.commentService.CreateComment(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// DeleteComment deletes a single comment
// DELETE /api/comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Comment ID is required")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
