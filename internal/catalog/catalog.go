// Package catalog serves the static, read-only proposal template catalog.
// Templates are parsed once from an embedded document at startup and never
// mutated afterwards.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"akademikform/internal/domain"
	"akademikform/internal/domain/models"
)

//go:embed templates.yaml
var templatesYAML []byte

// Catalog holds the loaded template set in its declaration order.
type Catalog struct {
	templates []models.Template
	byID      map[string]*models.Template
}

// Load parses the embedded template catalog.
func Load() (*Catalog, error) {
	var doc struct {
		Templates []models.Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(templatesYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse template catalog: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("template catalog is empty")
	}

	c := &Catalog{
		templates: doc.Templates,
		byID:      make(map[string]*models.Template, len(doc.Templates)),
	}
	for i := range c.templates {
		t := &c.templates[i]
		if t.ID == "" {
			return nil, fmt.Errorf("template %d has no id", i)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		c.byID[t.ID] = t
	}
	return c, nil
}

// List returns the full catalog in stable declaration order.
func (c *Catalog) List() []models.Template {
	return c.templates
}

// Get retrieves a template by id.
func (c *Catalog) Get(id string) (*models.Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "template", ID: id}
	}
	return t, nil
}

// SectionLimits returns the word bounds a template defines for the given
// section title. Unknown templates or titles yield unconstrained bounds.
func (c *Catalog) SectionLimits(templateID, sectionTitle string) (minWords, maxWords int) {
	t, ok := c.byID[templateID]
	if !ok {
		return 0, 0
	}
	for _, s := range t.Sections {
		if s.Title == sectionTitle {
			return s.MinWords, s.MaxWords
		}
	}
	return 0, 0
}
