package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"akademikform/internal/catalog"
	"akademikform/internal/domain"
	"akademikform/internal/domain/models"
	"akademikform/internal/domain/repositories"
	"akademikform/internal/domain/services"
)

// MaxProjectTitleLength bounds project titles.
const MaxProjectTitleLength = 255

// wideImpactSeeds are the three output categories every new project
// starts with.
var wideImpactSeeds = []struct {
	Category    string
	Description string
}{
	{
		Category:    "Bilimsel/Akademik Çıktılar",
		Description: "(Ulusal/Uluslararası Makale, Kitap Bölümü, Kitap, Bildiri vb.)",
	},
	{
		Category:    "Ekonomik/Ticari/Sosyal Çıktılar",
		Description: "(Ürün, Prototip, Patent, Faydalı Model, Tescil vb.)",
	},
	{
		Category:    "Yeni Proje Oluşturmasına Yönelik Çıktılar",
		Description: "(Ulusal/Uluslararası Yeni Proje vb.)",
	},
}

// projectService implements the ProjectService interface
type projectService struct {
	repo    repositories.ProjectRepository
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repositories.ProjectRepository,
	cat *catalog.Catalog,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		repo:    repo,
		catalog: cat,
		logger:  logger,
	}
}

// CreateProject instantiates a new project from a template: sections are
// materialized from the template's section titles in order, and the
// management and wide-impact tables are seeded with their default rows.
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.TemplateID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, MaxProjectTitleLength)),
		validation.Field(&req.UserID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	template, err := s.catalog.Get(req.TemplateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	projectID := newID("project-")

	sections := make([]models.Section, len(template.Sections))
	for i, def := range template.Sections {
		sections[i] = models.Section{
			ID:        newID("section-"),
			ProjectID: projectID,
			Title:     def.Title,
			Order:     i,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	wideImpact := make([]models.WideImpactRow, len(wideImpactSeeds))
	for i, seed := range wideImpactSeeds {
		wideImpact[i] = models.WideImpactRow{
			ID:                  newID("wi-"),
			Category:            seed.Category,
			CategoryDescription: seed.Description,
		}
	}

	project := &models.Project{
		ID:           projectID,
		UserID:       req.UserID,
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Title:        strings.TrimSpace(req.Title),
		CreatedAt:    now,
		UpdatedAt:    now,
		ProjectManagement: models.ProjectManagement{
			WorkSchedule:       []models.WorkScheduleRow{{ID: newID("ws-")}},
			RiskManagement:     []models.RiskManagementRow{{ID: newID("rm-")}},
			ResearchFacilities: []models.ResearchFacilityRow{{ID: newID("rf-")}},
		},
		WideImpact: wideImpact,
		Sections:   sections,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"template_id", template.ID,
		"user_id", req.UserID,
	)

	return project, nil
}

// ListProjects retrieves one page of the user's projects in insertion
// order. Pages past the end yield an empty list, not an error.
func (s *projectService) ListProjects(ctx context.Context, userID string, page, limit int) (*models.ProjectList, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	}
	if limit < 1 || limit > services.MaxPageLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, services.MaxPageLimit)
	}

	offset := (page - 1) * limit
	summaries, total, err := s.repo.List(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &models.ProjectList{
		Projects: summaries,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id, userID)
}

// UpdateTitle replaces the project title.
func (s *projectService) UpdateTitle(ctx context.Context, id, userID string, req *services.UpdateTitleRequest) (*services.TitleUpdate, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, MaxProjectTitleLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.mutate(ctx, id, userID, func(p *models.Project) {
		p.Title = strings.TrimSpace(req.Title)
	})
	if err != nil {
		return nil, err
	}

	return &services.TitleUpdate{
		ID:        project.ID,
		Title:     project.Title,
		UpdatedAt: project.UpdatedAt,
	}, nil
}

// UpdateGeneralInfo replaces the general info block wholesale.
func (s *projectService) UpdateGeneralInfo(ctx context.Context, id, userID string, req *services.UpdateGeneralInfoRequest) (*services.GeneralInfoUpdate, error) {
	project, err := s.mutate(ctx, id, userID, func(p *models.Project) {
		p.GeneralInfo = models.GeneralInfo{
			ApplicantName: req.ApplicantName,
			ResearchTitle: req.ResearchTitle,
			AdvisorName:   req.AdvisorName,
			Institution:   req.Institution,
		}
	})
	if err != nil {
		return nil, err
	}

	return &services.GeneralInfoUpdate{
		GeneralInfo: project.GeneralInfo,
		UpdatedAt:   project.UpdatedAt,
	}, nil
}

// UpdateKeywords replaces the keywords string.
func (s *projectService) UpdateKeywords(ctx context.Context, id, userID string, req *services.UpdateKeywordsRequest) (*services.KeywordsUpdate, error) {
	project, err := s.mutate(ctx, id, userID, func(p *models.Project) {
		p.Keywords = req.Keywords
	})
	if err != nil {
		return nil, err
	}

	return &services.KeywordsUpdate{
		Keywords:  project.Keywords,
		UpdatedAt: project.UpdatedAt,
	}, nil
}

// UpdateScientificMerit replaces the scientific merit block wholesale.
func (s *projectService) UpdateScientificMerit(ctx context.Context, id, userID string, req *services.UpdateScientificMeritRequest) (*services.ScientificMeritUpdate, error) {
	project, err := s.mutate(ctx, id, userID, func(p *models.Project) {
		p.ScientificMerit = models.ScientificMerit{
			ImportanceAndQuality: req.ImportanceAndQuality,
			AimsAndObjectives:    req.AimsAndObjectives,
		}
	})
	if err != nil {
		return nil, err
	}

	return &services.ScientificMeritUpdate{
		ScientificMerit: project.ScientificMerit,
		UpdatedAt:       project.UpdatedAt,
	}, nil
}

// UpdateProjectManagement replaces all three management tables wholesale.
// Rows arriving without an id are new and get one; existing row ids are
// kept stable.
func (s *projectService) UpdateProjectManagement(ctx context.Context, id, userID string, req *services.UpdateProjectManagementRequest) (*services.ProjectManagementUpdate, error) {
	project, err := s.mutate(ctx, id, userID, func(p *models.Project) {
		ws := append([]models.WorkScheduleRow(nil), req.WorkSchedule...)
		for i := range ws {
			if ws[i].ID == "" {
				ws[i].ID = newID("ws-")
			}
		}
		rm := append([]models.RiskManagementRow(nil), req.RiskManagement...)
		for i := range rm {
			if rm[i].ID == "" {
				rm[i].ID = newID("rm-")
			}
		}
		rf := append([]models.ResearchFacilityRow(nil), req.ResearchFacilities...)
		for i := range rf {
			if rf[i].ID == "" {
				rf[i].ID = newID("rf-")
			}
		}
		p.ProjectManagement = models.ProjectManagement{
			WorkSchedule:       ws,
			RiskManagement:     rm,
			ResearchFacilities: rf,
		}
	})
	if err != nil {
		return nil, err
	}

	return &services.ProjectManagementUpdate{
		ProjectManagement: project.ProjectManagement,
		UpdatedAt:         project.UpdatedAt,
	}, nil
}

// UpdateWideImpact replaces the wide impact table wholesale.
func (s *projectService) UpdateWideImpact(ctx context.Context, id, userID string, req *services.UpdateWideImpactRequest) (*services.WideImpactUpdate, error) {
	project, err := s.mutate(ctx, id, userID, func(p *models.Project) {
		rows := append([]models.WideImpactRow(nil), req.WideImpact...)
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = newID("wi-")
			}
		}
		p.WideImpact = rows
	})
	if err != nil {
		return nil, err
	}

	return &services.WideImpactUpdate{
		WideImpact: project.WideImpact,
		UpdatedAt:  project.UpdatedAt,
	}, nil
}

// DeleteProject removes the aggregate. Hard delete, no tombstone.
func (s *projectService) DeleteProject(ctx context.Context, id, userID string) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "project", ID: id}
	}

	s.logger.Info("project deleted",
		"id", id,
		"user_id", userID,
	)
	return nil
}

// mutate applies one whole-substructure replacement to an owned project
// and persists it with a bumped UpdatedAt. The update either fully
// applies or the stored state is left untouched.
func (s *projectService) mutate(ctx context.Context, id, userID string, apply func(*models.Project)) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	apply(project)
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"user_id", userID,
	)
	return project, nil
}
