// Package ai implements the text generation gateway: prompt construction,
// the provider boundary, and post-processing of returned completions.
package ai

import (
	"context"
)

// TextProvider is the narrow text-in/text-out boundary to an external
// generative-text model. Prompt construction and post-processing live on
// this side of the boundary so they stay testable without the provider.
type TextProvider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends one assembled instruction and returns the single
	// textual completion.
	Complete(ctx context.Context, prompt string) (string, error)
}
