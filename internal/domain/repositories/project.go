package repositories

import (
	"context"

	"akademikform/internal/domain/models"
)

// ProjectRepository defines data access operations for project aggregates.
// Every lookup is scoped by user id; an ownership mismatch is reported as
// not found, never as a distinct permission error.
type ProjectRepository interface {
	// Create stores a new project aggregate.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project owned by userID.
	GetByID(ctx context.Context, id, userID string) (*models.Project, error)

	// List retrieves the slice [offset, offset+limit) of the user's
	// projects in insertion order, plus the user's total project count.
	List(ctx context.Context, userID string, offset, limit int) ([]models.ProjectSummary, int, error)

	// Update replaces a stored aggregate wholesale.
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project. Returns whether anything was deleted.
	Delete(ctx context.Context, id, userID string) (bool, error)

	// GetBySectionID locates the project owning a section without
	// requiring the project id in the request.
	GetBySectionID(ctx context.Context, sectionID, userID string) (*models.Project, error)

	// AppendRevision replaces the stored aggregate and appends one
	// accepted-content revision to the section's append-only history as
	// a single unit; neither change lands without the other.
	AppendRevision(ctx context.Context, project *models.Project, revision *models.Revision) error

	// ListRevisions returns a section's revision history in accept
	// order, scoped by owner.
	ListRevisions(ctx context.Context, sectionID, userID string) ([]models.Revision, error)
}
