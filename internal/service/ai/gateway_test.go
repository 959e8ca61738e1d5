package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"akademikform/internal/domain"
	"akademikform/internal/domain/services"
)

// fakeProvider echoes a canned completion and captures the prompt it was
// given.
type fakeProvider struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGatewayGenerate(t *testing.T) {
	provider := &fakeProvider{response: "  **Üretilen**   akademik  metin.  "}
	gw := NewGateway(provider, testLogger())

	req := &services.GenerateRequest{
		DraftContent: "taslak",
		SectionTitle: "Projenin Özeti",
		ProjectTitle: "Test",
	}
	result, err := gw.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Provider output is normalized: markers stripped, whitespace collapsed.
	if result.GeneratedContent != "Üretilen akademik metin." {
		t.Errorf("GeneratedContent = %q", result.GeneratedContent)
	}
	// Empty style falls back to the default before the prompt is built,
	// without writing the default back into the request.
	if !strings.Contains(provider.lastPrompt, "- Stil: "+services.DefaultStyle) {
		t.Error("prompt does not carry the default style")
	}
	if req.Style != "" {
		t.Errorf("req.Style = %q after Generate, want unchanged empty string", req.Style)
	}
}

func TestGatewayRevise(t *testing.T) {
	provider := &fakeProvider{response: "Revize edilmiş metin."}
	gw := NewGateway(provider, testLogger())

	req := &services.ReviseRequest{
		CurrentContent: "eski metin",
		RevisionPrompt: "kısalt",
		SectionTitle:   "Projenin Özeti",
		ProjectTitle:   "Test",
	}
	result, err := gw.Revise(context.Background(), req)
	if err != nil {
		t.Fatalf("Revise() error = %v", err)
	}
	if result.GeneratedContent != "Revize edilmiş metin." {
		t.Errorf("GeneratedContent = %q", result.GeneratedContent)
	}
	if !strings.Contains(provider.lastPrompt, "- Stil: "+services.DefaultStyle) {
		t.Error("prompt does not carry the default style")
	}
	if req.Style != "" {
		t.Errorf("req.Style = %q after Revise, want unchanged empty string", req.Style)
	}
}

func TestGatewayNoProvider(t *testing.T) {
	gw := NewGateway(nil, testLogger())

	if gw.Available() {
		t.Error("Available() = true with nil provider")
	}

	_, err := gw.Generate(context.Background(), &services.GenerateRequest{DraftContent: "x"})
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("Generate() error = %v, want ErrProviderUnavailable", err)
	}

	_, err = gw.Revise(context.Background(), &services.ReviseRequest{CurrentContent: "x", RevisionPrompt: "y"})
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("Revise() error = %v, want ErrProviderUnavailable", err)
	}
}

func TestGatewayProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream timeout")}
	gw := NewGateway(provider, testLogger())

	_, err := gw.Generate(context.Background(), &services.GenerateRequest{DraftContent: "x"})
	if !errors.Is(err, domain.ErrProvider) {
		t.Errorf("Generate() error = %v, want ErrProvider", err)
	}
	if !strings.Contains(err.Error(), "upstream timeout") {
		t.Errorf("error does not carry the upstream cause: %v", err)
	}
}
