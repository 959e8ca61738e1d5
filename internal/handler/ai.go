package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"akademikform/internal/domain"
	"akademikform/internal/domain/services"
	"akademikform/internal/httputil"
	"akademikform/internal/service/ai"
)

// Free-standing generation requests for fields that are not sections
// (wide-impact rows, scientific merit). The optional context map only
// picks a human-readable label for the prompt.
type (
	GenericGenerateRequest struct {
		Content                string         `json:"content"`
		Style                  string         `json:"style"`
		AdditionalInstructions string         `json:"additional_instructions"`
		Context                map[string]any `json:"context"`
	}

	GenericReviseRequest struct {
		CurrentContent string         `json:"current_content"`
		RevisionPrompt string         `json:"revision_prompt"`
		Style          string         `json:"style"`
		Context        map[string]any `json:"context"`
	}
)

// AIHandler serves section-independent generation and revision.
type AIHandler struct {
	generator services.TextGenerator
	logger    *slog.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(generator services.TextGenerator, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		generator: generator,
		logger:    logger,
	}
}

// Generate produces text for a free-standing field
// POST /api/v1/ai/generate
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenericGenerateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.generator.Generate(r.Context(), &services.GenerateRequest{
		DraftContent:           req.Content,
		SectionTitle:           ai.FieldContextLabel(req.Context),
		Style:                  req.Style,
		AdditionalInstructions: req.AdditionalInstructions,
	})
	if err != nil {
		h.respondFailure(w, err, "ai_generation_failed", "AI metin üretimi sırasında bir hata oluştu")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// Revise reworks text for a free-standing field
// POST /api/v1/ai/revise
func (h *AIHandler) Revise(w http.ResponseWriter, r *http.Request) {
	var req GenericReviseRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.generator.Revise(r.Context(), &services.ReviseRequest{
		CurrentContent: req.CurrentContent,
		RevisionPrompt: req.RevisionPrompt,
		SectionTitle:   ai.FieldContextLabel(req.Context),
		Style:          req.Style,
	})
	if err != nil {
		h.respondFailure(w, err, "ai_revision_failed", "AI metin revizyonu sırasında bir hata oluştu")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

func (h *AIHandler) respondFailure(w http.ResponseWriter, err error, kind, prefix string) {
	if errors.Is(err, domain.ErrProvider) || errors.Is(err, domain.ErrProviderUnavailable) {
		h.logger.Error("text generation failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, kind, prefix+": "+err.Error())
		return
	}
	handleError(w, err)
}
