package ai

import (
	"context"
	"fmt"
	"log/slog"

	"akademikform/internal/domain"
	"akademikform/internal/domain/services"
)

// Gateway implements the TextGenerator interface on top of a TextProvider.
// The provider may be nil when no usable upstream model was resolved at
// startup; calls then fail with ErrProviderUnavailable.
type Gateway struct {
	provider TextProvider
	logger   *slog.Logger
}

// NewGateway creates a text generation gateway.
func NewGateway(provider TextProvider, logger *slog.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		logger:   logger,
	}
}

// Generate builds a drafting instruction, invokes the provider, and
// normalizes the returned text.
func (g *Gateway) Generate(ctx context.Context, req *services.GenerateRequest) (*services.GeneratedText, error) {
	if g.provider == nil {
		return nil, domain.ErrProviderUnavailable
	}

	// Default the style on a copy; the caller's request stays untouched.
	promptReq := *req
	if promptReq.Style == "" {
		promptReq.Style = services.DefaultStyle
	}

	prompt := BuildGeneratePrompt(&promptReq)
	text, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	result := PostProcess(text)
	g.logger.Debug("text generated",
		"provider", g.provider.Name(),
		"section", req.SectionTitle,
		"word_count", CountWords(result),
	)
	return &services.GeneratedText{GeneratedContent: result}, nil
}

// Revise builds a revision instruction, invokes the provider, and
// normalizes the returned text.
func (g *Gateway) Revise(ctx context.Context, req *services.ReviseRequest) (*services.GeneratedText, error) {
	if g.provider == nil {
		return nil, domain.ErrProviderUnavailable
	}

	promptReq := *req
	if promptReq.Style == "" {
		promptReq.Style = services.DefaultStyle
	}

	prompt := BuildRevisePrompt(&promptReq)
	text, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	result := PostProcess(text)
	g.logger.Debug("text revised",
		"provider", g.provider.Name(),
		"section", req.SectionTitle,
		"word_count", CountWords(result),
	)
	return &services.GeneratedText{GeneratedContent: result}, nil
}

// Available reports whether an upstream model was resolved at startup.
func (g *Gateway) Available() bool {
	return g.provider != nil
}

var _ services.TextGenerator = (*Gateway)(nil)
