// Package memory provides the default, process-local implementation of the
// project repository. All state is lost on restart; the postgres package
// provides the durable alternative behind the same interface.
package memory

import (
	"context"
	"sync"

	"akademikform/internal/domain"
	"akademikform/internal/domain/models"
	"akademikform/internal/domain/repositories"
)

// ProjectRepository is a mutex-guarded in-memory project store. Projects
// are kept in insertion order for pagination; a section index avoids
// scanning every project when a section is addressed by id alone.
type ProjectRepository struct {
	mu sync.RWMutex

	projects map[string]*models.Project
	order    []string          // project ids in insertion order
	sections map[string]string // section id -> project id
	revs     map[string][]models.Revision
}

// NewProjectRepository creates an empty in-memory project repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		projects: make(map[string]*models.Project),
		sections: make(map[string]string),
		revs:     make(map[string][]models.Revision),
	}
}

// Create stores a new project aggregate.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneProject(project)
	r.projects[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	for _, s := range stored.Sections {
		r.sections[s.ID] = stored.ID
	}
	return nil
}

// GetByID retrieves a project owned by userID.
func (r *ProjectRepository) GetByID(ctx context.Context, id, userID string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok || project.UserID != userID {
		return nil, &domain.NotFoundError{Resource: "project", ID: id}
	}
	return cloneProject(project), nil
}

// List retrieves the requested slice of the user's projects in insertion
// order, plus the user's total project count.
func (r *ProjectRepository) List(ctx context.Context, userID string, offset, limit int) ([]models.ProjectSummary, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []models.ProjectSummary
	for _, id := range r.order {
		if p := r.projects[id]; p.UserID == userID {
			all = append(all, p.Summary())
		}
	}

	total := len(all)
	if offset >= total {
		return []models.ProjectSummary{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// Update replaces a stored aggregate wholesale.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.projects[project.ID]
	if !ok || existing.UserID != project.UserID {
		return &domain.NotFoundError{Resource: "project", ID: project.ID}
	}
	r.projects[project.ID] = cloneProject(project)
	return nil
}

// Delete removes a project, its section index entries, and its revision
// history. Returns whether anything was deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok || project.UserID != userID {
		return false, nil
	}

	delete(r.projects, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	for _, s := range project.Sections {
		delete(r.sections, s.ID)
		delete(r.revs, s.ID)
	}
	return true, nil
}

// GetBySectionID locates the project owning a section via the section
// index.
func (r *ProjectRepository) GetBySectionID(ctx context.Context, sectionID, userID string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projectID, ok := r.sections[sectionID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
	}
	project, ok := r.projects[projectID]
	if !ok || project.UserID != userID {
		return nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
	}
	return cloneProject(project), nil
}

// AppendRevision replaces the stored aggregate and appends one revision
// to a section's history under a single lock hold.
func (r *ProjectRepository) AppendRevision(ctx context.Context, project *models.Project, revision *models.Revision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.projects[project.ID]
	if !ok || existing.UserID != project.UserID {
		return &domain.NotFoundError{Resource: "project", ID: project.ID}
	}
	r.projects[project.ID] = cloneProject(project)
	r.revs[revision.SectionID] = append(r.revs[revision.SectionID], *revision)
	return nil
}

// ListRevisions returns a section's revision history in accept order.
func (r *ProjectRepository) ListRevisions(ctx context.Context, sectionID, userID string) ([]models.Revision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projectID, ok := r.sections[sectionID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
	}
	project, ok := r.projects[projectID]
	if !ok || project.UserID != userID {
		return nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
	}

	history := r.revs[sectionID]
	out := make([]models.Revision, len(history))
	copy(out, history)
	return out, nil
}

// cloneProject deep-copies an aggregate so callers can never mutate
// stored state through a returned pointer.
func cloneProject(p *models.Project) *models.Project {
	c := *p
	c.ProjectManagement.WorkSchedule = append([]models.WorkScheduleRow(nil), p.ProjectManagement.WorkSchedule...)
	c.ProjectManagement.RiskManagement = append([]models.RiskManagementRow(nil), p.ProjectManagement.RiskManagement...)
	c.ProjectManagement.ResearchFacilities = append([]models.ResearchFacilityRow(nil), p.ProjectManagement.ResearchFacilities...)
	c.WideImpact = append([]models.WideImpactRow(nil), p.WideImpact...)
	c.Sections = make([]models.Section, len(p.Sections))
	for i, s := range p.Sections {
		c.Sections[i] = s
		if s.FinalContent != nil {
			fc := *s.FinalContent
			c.Sections[i].FinalContent = &fc
		}
	}
	return &c
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
