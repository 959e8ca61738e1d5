package models

import (
	"time"
)

// Section is one titled, independently editable unit of a project's
// document. DraftContent is the user's working text; FinalContent is the
// text the user has explicitly accepted (absent until the first accept).
type Section struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Title        string    `json:"title"`
	Order        int       `json:"order"`
	DraftContent string    `json:"draft_content"`
	FinalContent *string   `json:"final_content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Revision records one accepted content version of a section. Revisions
// are append-only; RevisionNumber starts at 1 and increments per section.
type Revision struct {
	ID             string    `json:"id"`
	SectionID      string    `json:"section_id"`
	Content        string    `json:"content"`
	RevisionNumber int       `json:"revision_number"`
	CreatedAt      time.Time `json:"created_at"`
}

// RevisionList is the revision history response for a section.
type RevisionList struct {
	Revisions []Revision `json:"revisions"`
	Total     int        `json:"total"`
}
