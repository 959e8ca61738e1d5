package catalog

import (
	"errors"
	"testing"

	"akademikform/internal/domain"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	templates := c.List()
	if len(templates) != 3 {
		t.Fatalf("List() returned %d templates, want 3", len(templates))
	}

	// Declaration order is the API order.
	wantIDs := []string{"tubitak-2209a", "tubitak-1001", "tubitak-1003"}
	for i, id := range wantIDs {
		if templates[i].ID != id {
			t.Errorf("templates[%d].ID = %q, want %q", i, templates[i].ID, id)
		}
	}
}

func TestGet(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	template, err := c.Get("tubitak-2209a")
	if err != nil {
		t.Fatalf("Get(tubitak-2209a) error = %v", err)
	}
	if template.Name != "TÜBİTAK 2209-A" {
		t.Errorf("Name = %q, want %q", template.Name, "TÜBİTAK 2209-A")
	}

	wantSections := []string{
		"Projenin Özeti",
		"Araştırma Önerisinin Bilimsel Niteliği",
		"Projenin Yönetimi",
		"Projenin Geniş Etkisi",
	}
	if len(template.Sections) != len(wantSections) {
		t.Fatalf("got %d sections, want %d", len(template.Sections), len(wantSections))
	}
	for i, title := range wantSections {
		if template.Sections[i].Title != title {
			t.Errorf("Sections[%d].Title = %q, want %q", i, template.Sections[i].Title, title)
		}
		if template.Sections[i].Order != i {
			t.Errorf("Sections[%d].Order = %d, want %d", i, template.Sections[i].Order, i)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = c.Get("unknown-template")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(unknown-template) error = %v, want ErrNotFound", err)
	}
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error is not a NotFoundError: %v", err)
	}
	if notFound.Resource != "template" {
		t.Errorf("Resource = %q, want %q", notFound.Resource, "template")
	}
}

func TestSectionLimits(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name       string
		templateID string
		title      string
		wantMin    int
		wantMax    int
	}{
		{"summary section", "tubitak-2209a", "Projenin Özeti", 25, 450},
		{"unconstrained section", "tubitak-2209a", "Araştırma Önerisinin Bilimsel Niteliği", 0, 0},
		{"management section", "tubitak-2209a", "Projenin Yönetimi", 100, 800},
		{"impact section", "tubitak-2209a", "Projenin Geniş Etkisi", 50, 500},
		{"unknown title", "tubitak-2209a", "Bilinmeyen Bölüm", 0, 0},
		{"unknown template", "no-such-template", "Projenin Özeti", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := c.SectionLimits(tt.templateID, tt.title)
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("SectionLimits(%q, %q) = (%d, %d), want (%d, %d)",
					tt.templateID, tt.title, min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}
