package models

// TemplateSection is one section definition inside a proposal template.
// Word bounds of 0 mean the bound is not constrained.
type TemplateSection struct {
	Title       string `json:"title" yaml:"title"`
	Order       int    `json:"order" yaml:"order"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	MinWords    int    `json:"min_words" yaml:"min_words"`
	MaxWords    int    `json:"max_words" yaml:"max_words"`
}

// Template is a named, ordered list of section definitions used to
// instantiate new projects. Templates are static and read-only.
type Template struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Sections    []TemplateSection `json:"sections" yaml:"sections"`
}
