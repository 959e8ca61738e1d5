package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"akademikform/internal/domain"
	"akademikform/internal/domain/services"
	"akademikform/internal/httputil"
)

// SectionHandler handles section editing and the AI-assisted drafting
// lifecycle.
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

// UpdateDraft replaces a section's working draft
// PATCH /api/v1/sections/{id}
func (h *SectionHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	section, err := h.sectionService.UpdateDraft(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, section)
}

// Generate drafts section content with the generation gateway
// POST /api/v1/sections/{id}/generate
func (h *SectionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.GenerateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.sectionService.Generate(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		h.handleGenerationError(w, err, "ai_generation_failed", "AI metin üretimi başarısız")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// Revise reworks a previous AI suggestion
// POST /api/v1/sections/{id}/revise
func (h *SectionHandler) Revise(w http.ResponseWriter, r *http.Request) {
	var req services.ReviseSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.sectionService.Revise(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		h.handleGenerationError(w, err, "ai_revision_failed", "AI revizyonu başarısız")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// Accept records text as the section's accepted content
// POST /api/v1/sections/{id}/accept
func (h *SectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req services.AcceptContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.sectionService.Accept(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// ListRevisions returns the section's revision history
// GET /api/v1/sections/{id}/revisions
func (h *SectionHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	result, err := h.sectionService.ListRevisions(r.Context(), r.PathValue("id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// handleGenerationError maps provider faults to the endpoint's failure
// kind with the upstream error embedded; everything else takes the
// standard path.
func (h *SectionHandler) handleGenerationError(w http.ResponseWriter, err error, kind, prefix string) {
	if errors.Is(err, domain.ErrProvider) || errors.Is(err, domain.ErrProviderUnavailable) {
		h.logger.Error("text generation failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, kind, prefix+": "+err.Error())
		return
	}
	handleError(w, err)
}
