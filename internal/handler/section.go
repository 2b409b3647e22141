package handler

import (
	"log/slog"
	"net/http"

	"motionpro/internal/domain/services"
	"motionpro/internal/httputil"
)

// SectionHandler handles section and subsection HTTP requests
type SectionHandler struct {
	sectionService services.SectionService
	logger         *slog.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionService services.SectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
		logger:         logger,
	}
}

// ListSections returns a workspace's sections in display order
// GET /api/workspaces/{id}/sections
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("id")
	if workspaceID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Workspace ID is required")
		return
	}

	sections, err := h.sectionService.ListSections(r.Context(), workspaceID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, sections)
}

// CreateSection creates a section in a workspace
// POST /api/workspaces/{id}/sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("id")
	if workspaceID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Workspace ID is required")
		return
	}

	var req services.CreateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.WorkspaceID = workspaceID

	section, err := h.sectionService.CreateSection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, section)
}

// UpdateSection renames or reorders a section
// PATCH /api/sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	var req services.UpdateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	section, err := h.sectionService.UpdateSection(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, section)
}

// DeleteSection deletes a section, detaching its pages
// DELETE /api/sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	if err := h.sectionService.DeleteSection(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSubsections returns a section's subsections in display order
// GET /api/sections/{id}/subsections
func (h *SectionHandler) ListSubsections(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	if sectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	subs, err := h.sectionService.ListSubsections(r.Context(), sectionID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, subs)
}

// CreateSubsection creates a subsection in a section
// POST /api/sections/{id}/subsections
func (h *SectionHandler) CreateSubsection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	if sectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	var req services.CreateSubsectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.SectionID = sectionID

	sub, err := h.sectionService.CreateSubsection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, sub)
}

// UpdateSubsection renames or reorders a subsection
// PATCH /api/subsections/{id}
func (h *SectionHandler) UpdateSubsection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Subsection ID is required")
		return
	}

	var req services.UpdateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.sectionService.UpdateSubsection(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, sub)
}

// DeleteSubsection deletes a subsection, detaching its pages
// DELETE /api/subsections/{id}
func (h *SectionHandler) DeleteSubsection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Subsection ID is required")
		return
	}

	if err := h.sectionService.DeleteSubsection(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
