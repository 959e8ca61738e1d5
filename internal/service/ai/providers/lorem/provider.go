// Package lorem is an offline text provider that generates lorem ipsum
// paragraphs. Used for development and testing without real API keys.
package lorem

import (
	"context"
	"strings"

	loremgen "github.com/bozaro/golorem"
)

// Provider generates placeholder text instead of calling a real model.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// Complete ignores the prompt and returns a few paragraphs of filler.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	paragraphs := []string{
		p.generator.Paragraph(3, 5),
		p.generator.Paragraph(3, 5),
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
