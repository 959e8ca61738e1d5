package services

import (
	"context"

	"akademikform/internal/domain/models"
)

// UpdateSectionRequest replaces a section's working draft.
type UpdateSectionRequest struct {
	DraftContent string `json:"draft_content"`
}

// GenerateSectionRequest drives AI drafting for a section. Word bounds
// come from the project's template, not the request.
type GenerateSectionRequest struct {
	DraftContent           string `json:"draft_content"`
	Style                  string `json:"style"`
	AdditionalInstructions string `json:"additional_instructions"`
}

// ReviseSectionRequest reworks a previous AI suggestion for a section.
type ReviseSectionRequest struct {
	CurrentContent string `json:"current_content"`
	RevisionPrompt string `json:"revision_prompt"`
	Style          string `json:"style"`
}

// AcceptContentRequest marks text as the section's accepted content.
type AcceptContentRequest struct {
	Content string `json:"content"`
}

// AcceptedSection is the accept response: the updated section plus the
// revision record the accept produced.
type AcceptedSection struct {
	models.Section
	Revision models.Revision `json:"revision"`
}

// SectionService owns section editing and the AI-assisted drafting
// lifecycle. Sections are addressed by id alone; the owning project is
// resolved through the store's section index.
type SectionService interface {
	UpdateDraft(ctx context.Context, sectionID, userID string, req *UpdateSectionRequest) (*models.Section, error)
	Generate(ctx context.Context, sectionID, userID string, req *GenerateSectionRequest) (*GeneratedText, error)
	Revise(ctx context.Context, sectionID, userID string, req *ReviseSectionRequest) (*GeneratedText, error)
	Accept(ctx context.Context, sectionID, userID string, req *AcceptContentRequest) (*AcceptedSection, error)
	ListRevisions(ctx context.Context, sectionID, userID string) (*models.RevisionList, error)
}
