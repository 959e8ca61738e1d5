package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"akademikform/internal/domain"
	"akademikform/internal/domain/models"
	"akademikform/internal/domain/repositories"
)

// ProjectRepository stores each project aggregate as a JSONB document,
// with a section index table for section-id lookups and an append-only
// revisions table per section.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a pgx-backed project repository.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// EnsureSchema creates the backing tables if they do not exist yet.
func (r *ProjectRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS projects (
			id         text PRIMARY KEY,
			user_id    text NOT NULL,
			seq        bigint GENERATED ALWAYS AS IDENTITY,
			data       jsonb NOT NULL,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);
		CREATE INDEX IF NOT EXISTS projects_user_seq_idx ON projects (user_id, seq);

		CREATE TABLE IF NOT EXISTS section_index (
			section_id text PRIMARY KEY,
			project_id text NOT NULL REFERENCES projects(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS section_revisions (
			id              text PRIMARY KEY,
			project_id      text NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			section_id      text NOT NULL,
			content         text NOT NULL,
			revision_number int NOT NULL,
			created_at      timestamptz NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS section_revisions_section_idx
			ON section_revisions (section_id, revision_number);
	`
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Create stores a new project aggregate and its section index entries.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create project: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO projects (id, user_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, project.ID, project.UserID, data, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	for _, s := range project.Sections {
		_, err = tx.Exec(ctx, `
			INSERT INTO section_index (section_id, project_id) VALUES ($1, $2)
		`, s.ID, project.ID)
		if err != nil {
			return fmt.Errorf("index section: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create project: %w", err)
	}
	return nil
}

// GetByID retrieves a project owned by userID.
func (r *ProjectRepository) GetByID(ctx context.Context, id, userID string) (*models.Project, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `
		SELECT data FROM projects WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&data)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Resource: "project", ID: id}
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return decodeProject(data)
}

// List retrieves the requested slice of the user's projects in insertion
// order, plus the user's total project count.
func (r *ProjectRepository) List(ctx context.Context, userID string, offset, limit int) ([]models.ProjectSummary, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM projects WHERE user_id = $1
	`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT data FROM projects
		WHERE user_id = $1
		ORDER BY seq
		OFFSET $2 LIMIT $3
	`, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	summaries := []models.ProjectSummary{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, 0, fmt.Errorf("scan project: %w", err)
		}
		project, err := decodeProject(data)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, project.Summary())
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate projects: %w", err)
	}
	return summaries, total, nil
}

// Update replaces a stored aggregate wholesale.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE projects SET data = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`, data, project.UpdatedAt, project.ID, project.UserID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "project", ID: project.ID}
	}
	return nil
}

// Delete removes a project. Index entries and revisions cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM projects WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetBySectionID locates the project owning a section via the index table.
func (r *ProjectRepository) GetBySectionID(ctx context.Context, sectionID, userID string) (*models.Project, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `
		SELECT p.data
		FROM section_index si
		JOIN projects p ON p.id = si.project_id
		WHERE si.section_id = $1 AND p.user_id = $2
	`, sectionID, userID).Scan(&data)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
		}
		return nil, fmt.Errorf("get project by section: %w", err)
	}
	return decodeProject(data)
}

// AppendRevision replaces the stored aggregate and appends one revision
// to a section's history in a single transaction. A revision number that
// already exists for the section reports a conflict and rolls back the
// aggregate update with it.
func (r *ProjectRepository) AppendRevision(ctx context.Context, project *models.Project, revision *models.Revision) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append revision: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE projects SET data = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`, data, project.UpdatedAt, project.ID, project.UserID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "project", ID: project.ID}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO section_revisions (id, project_id, section_id, content, revision_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, revision.ID, project.ID, revision.SectionID, revision.Content, revision.RevisionNumber, revision.CreatedAt)
	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("%w: revision %d already recorded for section %s",
				domain.ErrConflict, revision.RevisionNumber, revision.SectionID)
		}
		return fmt.Errorf("append revision: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit append revision: %w", err)
	}
	return nil
}

// ListRevisions returns a section's revision history in accept order.
func (r *ProjectRepository) ListRevisions(ctx context.Context, sectionID, userID string) ([]models.Revision, error) {
	// Ownership gate first so a foreign or unknown section reads as
	// not found rather than as an empty history.
	var projectID string
	err := r.pool.QueryRow(ctx, `
		SELECT si.project_id
		FROM section_index si
		JOIN projects p ON p.id = si.project_id
		WHERE si.section_id = $1 AND p.user_id = $2
	`, sectionID, userID).Scan(&projectID)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Resource: "section", ID: sectionID}
		}
		return nil, fmt.Errorf("resolve section owner: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, section_id, content, revision_number, created_at
		FROM section_revisions
		WHERE section_id = $1
		ORDER BY revision_number
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	revisions := []models.Revision{}
	for rows.Next() {
		var rev models.Revision
		if err := rows.Scan(&rev.ID, &rev.SectionID, &rev.Content, &rev.RevisionNumber, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revisions, nil
}

func decodeProject(data []byte) (*models.Project, error) {
	var project models.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &project, nil
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
