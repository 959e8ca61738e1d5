package models

import (
	"time"
)

// GeneralInfo holds the A section of the proposal form. Free text, no
// validation beyond request shape.
type GeneralInfo struct {
	ApplicantName string `json:"applicant_name"`
	ResearchTitle string `json:"research_title"`
	AdvisorName   string `json:"advisor_name"`
	Institution   string `json:"institution"`
}

// ScientificMerit holds the 1.1 and 1.2 free-text fields.
type ScientificMerit struct {
	ImportanceAndQuality string `json:"importance_and_quality"`
	AimsAndObjectives    string `json:"aims_and_objectives"`
}

// WorkScheduleRow is one row of the work schedule table (3.1).
type WorkScheduleRow struct {
	ID                          string `json:"id"`
	DateRange                   string `json:"date_range"`
	Activities                  string `json:"activities"`
	Responsible                 string `json:"responsible"`
	SuccessCriteriaContribution string `json:"success_criteria_contribution"`
}

// RiskManagementRow is one row of the risk management table (3.2).
type RiskManagementRow struct {
	ID             string `json:"id"`
	Risk           string `json:"risk"`
	Countermeasure string `json:"countermeasure"`
}

// ResearchFacilityRow is one row of the research facilities table (3.3).
type ResearchFacilityRow struct {
	ID                 string `json:"id"`
	EquipmentTypeModel string `json:"equipment_type_model"`
	ProjectUsage       string `json:"project_usage"`
}

// ProjectManagement groups the three ordered management tables.
type ProjectManagement struct {
	WorkSchedule       []WorkScheduleRow     `json:"work_schedule"`
	RiskManagement     []RiskManagementRow   `json:"risk_management"`
	ResearchFacilities []ResearchFacilityRow `json:"research_facilities"`
}

// WideImpactRow is one output category row of the wide impact table.
type WideImpactRow struct {
	ID                  string `json:"id"`
	Category            string `json:"category"`
	CategoryDescription string `json:"category_description"`
	Outputs             string `json:"outputs"`
}

// Project is the root aggregate a user edits. TemplateName is a
// denormalized copy taken at creation time and never resynchronized.
type Project struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	TemplateID        string            `json:"template_id"`
	TemplateName      string            `json:"template_name"`
	Title             string            `json:"title"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	GeneralInfo       GeneralInfo       `json:"general_info"`
	Keywords          string            `json:"keywords"`
	ScientificMerit   ScientificMerit   `json:"scientific_merit"`
	ProjectManagement ProjectManagement `json:"project_management"`
	WideImpact        []WideImpactRow   `json:"wide_impact"`
	Sections          []Section         `json:"sections"`
}

// ProjectSummary is the trimmed shape used by project listings.
type ProjectSummary struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TemplateID   string    `json:"template_id"`
	TemplateName string    `json:"template_name"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the listing shape of the project.
func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{
		ID:           p.ID,
		UserID:       p.UserID,
		TemplateID:   p.TemplateID,
		TemplateName: p.TemplateName,
		Title:        p.Title,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ProjectList is the paginated project listing response.
type ProjectList struct {
	Projects []ProjectSummary `json:"projects"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}
