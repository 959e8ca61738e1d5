package services

import (
	"context"
	"time"

	"akademikform/internal/domain/models"
)

// Page size bounds for project listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// CreateProjectRequest instantiates a new project from a template.
type CreateProjectRequest struct {
	TemplateID string `json:"template_id"`
	Title      string `json:"title"`
	UserID     string `json:"-"`
}

// UpdateTitleRequest replaces the project title.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// UpdateGeneralInfoRequest replaces the general info block wholesale.
type UpdateGeneralInfoRequest struct {
	ApplicantName string `json:"applicant_name"`
	ResearchTitle string `json:"research_title"`
	AdvisorName   string `json:"advisor_name"`
	Institution   string `json:"institution"`
}

// UpdateKeywordsRequest replaces the keywords string.
type UpdateKeywordsRequest struct {
	Keywords string `json:"keywords"`
}

// UpdateScientificMeritRequest replaces the scientific merit block.
type UpdateScientificMeritRequest struct {
	ImportanceAndQuality string `json:"importance_and_quality"`
	AimsAndObjectives    string `json:"aims_and_objectives"`
}

// UpdateProjectManagementRequest replaces all three management tables.
type UpdateProjectManagementRequest struct {
	WorkSchedule       []models.WorkScheduleRow     `json:"work_schedule"`
	RiskManagement     []models.RiskManagementRow   `json:"risk_management"`
	ResearchFacilities []models.ResearchFacilityRow `json:"research_facilities"`
}

// UpdateWideImpactRequest replaces the wide impact table.
type UpdateWideImpactRequest struct {
	WideImpact []models.WideImpactRow `json:"wide_impact"`
}

// Partial update responses: each carries the replaced sub-structure plus
// the bumped timestamp, mirroring what the update changed.
type (
	TitleUpdate struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	GeneralInfoUpdate struct {
		GeneralInfo models.GeneralInfo `json:"general_info"`
		UpdatedAt   time.Time          `json:"updated_at"`
	}

	KeywordsUpdate struct {
		Keywords  string    `json:"keywords"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	ScientificMeritUpdate struct {
		ScientificMerit models.ScientificMerit `json:"scientific_merit"`
		UpdatedAt       time.Time              `json:"updated_at"`
	}

	ProjectManagementUpdate struct {
		ProjectManagement models.ProjectManagement `json:"project_management"`
		UpdatedAt         time.Time                `json:"updated_at"`
	}

	WideImpactUpdate struct {
		WideImpact []models.WideImpactRow `json:"wide_impact"`
		UpdatedAt  time.Time              `json:"updated_at"`
	}
)

// ProjectService owns the project aggregate lifecycle. All operations are
// scoped by the acting user's id.
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	ListProjects(ctx context.Context, userID string, page, limit int) (*models.ProjectList, error)
	GetProject(ctx context.Context, id, userID string) (*models.Project, error)
	UpdateTitle(ctx context.Context, id, userID string, req *UpdateTitleRequest) (*TitleUpdate, error)
	UpdateGeneralInfo(ctx context.Context, id, userID string, req *UpdateGeneralInfoRequest) (*GeneralInfoUpdate, error)
	UpdateKeywords(ctx context.Context, id, userID string, req *UpdateKeywordsRequest) (*KeywordsUpdate, error)
	UpdateScientificMerit(ctx context.Context, id, userID string, req *UpdateScientificMeritRequest) (*ScientificMeritUpdate, error)
	UpdateProjectManagement(ctx context.Context, id, userID string, req *UpdateProjectManagementRequest) (*ProjectManagementUpdate, error)
	UpdateWideImpact(ctx context.Context, id, userID string, req *UpdateWideImpactRequest) (*WideImpactUpdate, error)
	DeleteProject(ctx context.Context, id, userID string) error
}
