package handler

import (
	"net/http"

	"akademikform/internal/catalog"
	"akademikform/internal/httputil"
)

// TemplateHandler serves the read-only template catalog.
type TemplateHandler struct {
	catalog *catalog.Catalog
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(cat *catalog.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: cat}
}

// ListTemplates returns the full catalog in stable order
// GET /api/v1/templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.catalog.List())
}

// GetTemplate returns one template by id
// GET /api/v1/templates/{id}
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.catalog.Get(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, template)
}
