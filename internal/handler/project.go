package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"akademikform/internal/domain/services"
	"akademikform/internal/httputil"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects retrieves one page of the user's projects
// GET /api/v1/projects?page&limit
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	page, err := queryInt(r, "page", 1)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "page must be an integer")
		return
	}
	limit, err := queryInt(r, "limit", services.DefaultPageLimit)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "limit must be an integer")
		return
	}

	list, err := h.projectService.ListProjects(r.Context(), userID, page, limit)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, list)
}

// CreateProject instantiates a new project from a template
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	req.UserID = httputil.GetUserID(r)

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, project)
}

// GetProject retrieves a project with all sub-structures
// GET /api/v1/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetProject(r.Context(), r.PathValue("id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, project)
}

// UpdateTitle replaces the project title
// PATCH /api/v1/projects/{id}
func (h *ProjectHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateTitleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.projectService.UpdateTitle(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// UpdateGeneralInfo replaces the general info block
// PATCH /api/v1/projects/{id}/general-info
func (h *ProjectHandler) UpdateGeneralInfo(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateGeneralInfoRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.projectService.UpdateGeneralInfo(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// UpdateKeywords replaces the keywords string
// PATCH /api/v1/projects/{id}/keywords
func (h *ProjectHandler) UpdateKeywords(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateKeywordsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.projectService.UpdateKeywords(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// UpdateScientificMerit replaces the scientific merit block
// PATCH /api/v1/projects/{id}/scientific-merit
func (h *ProjectHandler) UpdateScientificMerit(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateScientificMeritRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.projectService.UpdateScientificMerit(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// UpdateProjectManagement replaces all three management tables
// PATCH /api/v1/projects/{id}/project-management
func (h *ProjectHandler) UpdateProjectManagement(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateProjectManagementRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.projectService.UpdateProjectManagement(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// UpdateWideImpact replaces the wide impact table
// PATCH /api/v1/projects/{id}/wide-impact
func (h *ProjectHandler) UpdateWideImpact(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateWideImpactRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.projectService.UpdateWideImpact(r.Context(), r.PathValue("id"), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// DeleteProject removes a project
// DELETE /api/v1/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.DeleteProject(r.Context(), r.PathValue("id"), httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
