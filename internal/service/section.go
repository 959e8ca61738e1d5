package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"akademikform/internal/catalog"
	"akademikform/internal/domain"
	"akademikform/internal/domain/models"
	"akademikform/internal/domain/repositories"
	"akademikform/internal/domain/services"
)

// sectionService implements the SectionService interface
type sectionService struct {
	repo      repositories.ProjectRepository
	catalog   *catalog.Catalog
	generator services.TextGenerator
	logger    *slog.Logger
}

// NewSectionService creates a new section service
func NewSectionService(
	repo repositories.ProjectRepository,
	cat *catalog.Catalog,
	generator services.TextGenerator,
	logger *slog.Logger,
) services.SectionService {
	return &sectionService{
		repo:      repo,
		catalog:   cat,
		generator: generator,
		logger:    logger,
	}
}

// UpdateDraft replaces a section's working draft. The section is located
// by id alone through the store's section index.
func (s *sectionService) UpdateDraft(ctx context.Context, sectionID, userID string, req *services.UpdateSectionRequest) (*models.Section, error) {
	project, section, err := s.find(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	section.DraftContent = req.DraftContent
	section.UpdatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("section draft updated",
		"section_id", sectionID,
		"project_id", project.ID,
		"user_id", userID,
	)

	updated := *section
	return &updated, nil
}

// Generate drafts section content with the text generation gateway. Word
// bounds come from the project's template definition for that section.
func (s *sectionService) Generate(ctx context.Context, sectionID, userID string, req *services.GenerateSectionRequest) (*services.GeneratedText, error) {
	project, section, err := s.find(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	minWords, maxWords := s.catalog.SectionLimits(project.TemplateID, section.Title)

	return s.generator.Generate(ctx, &services.GenerateRequest{
		DraftContent:           req.DraftContent,
		SectionTitle:           section.Title,
		ProjectTitle:           project.Title,
		Style:                  req.Style,
		MinWords:               minWords,
		MaxWords:               maxWords,
		AdditionalInstructions: req.AdditionalInstructions,
	})
}

// Revise reworks a previous suggestion under a user-supplied directive.
func (s *sectionService) Revise(ctx context.Context, sectionID, userID string, req *services.ReviseSectionRequest) (*services.GeneratedText, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.RevisionPrompt, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, section, err := s.find(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	minWords, maxWords := s.catalog.SectionLimits(project.TemplateID, section.Title)

	return s.generator.Revise(ctx, &services.ReviseRequest{
		CurrentContent: req.CurrentContent,
		RevisionPrompt: req.RevisionPrompt,
		SectionTitle:   section.Title,
		ProjectTitle:   project.Title,
		Style:          req.Style,
		MinWords:       minWords,
		MaxWords:       maxWords,
	})
}

// Accept records text as the section's accepted content and appends a
// revision to the section's history. The draft is left untouched.
func (s *sectionService) Accept(ctx context.Context, sectionID, userID string, req *services.AcceptContentRequest) (*services.AcceptedSection, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Content, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, section, err := s.find(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListRevisions(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	content := req.Content
	section.FinalContent = &content
	section.UpdatedAt = now
	project.UpdatedAt = now

	revision := models.Revision{
		ID:             newID("rev-"),
		SectionID:      sectionID,
		Content:        content,
		RevisionNumber: len(history) + 1,
		CreatedAt:      now,
	}

	if err := s.repo.AppendRevision(ctx, project, &revision); err != nil {
		return nil, err
	}

	s.logger.Info("section content accepted",
		"section_id", sectionID,
		"project_id", project.ID,
		"revision_number", revision.RevisionNumber,
		"user_id", userID,
	)

	return &services.AcceptedSection{
		Section:  *section,
		Revision: revision,
	}, nil
}

// ListRevisions returns the section's stored revision history.
func (s *sectionService) ListRevisions(ctx context.Context, sectionID, userID string) (*models.RevisionList, error) {
	revisions, err := s.repo.ListRevisions(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	return &models.RevisionList{
		Revisions: revisions,
		Total:     len(revisions),
	}, nil
}

// find resolves the owning project and the section within it. A section
// owned by someone else reads as not found.
func (s *sectionService) find(ctx context.Context, sectionID, userID string) (*models.Project, *models.Section, error) {
	project, err := s.repo.GetBySectionID(ctx, sectionID, userID)
	if err != nil {
		return nil, nil, err
	}
	for i := range project.Sections {
		if project.Sections[i].ID == sectionID {
			return project, &project.Sections[i], nil
		}
	}
	// Index said the section belongs to this project but the aggregate
	// disagrees; treat as missing.
	return nil, nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
}
