package services

import (
	"context"
)

// DefaultStyle is the writing style used when a request does not name one.
const DefaultStyle = "Akademik, bilimsel ve profesyonel"

// GenerateRequest asks the gateway to turn a draft into polished text.
// Word bounds of 0 leave that side unconstrained.
type GenerateRequest struct {
	DraftContent           string
	SectionTitle           string
	ProjectTitle           string
	Style                  string
	MinWords               int
	MaxWords               int
	AdditionalInstructions string
}

// ReviseRequest asks the gateway to rework existing text following a
// user-supplied revision directive.
type ReviseRequest struct {
	CurrentContent string
	RevisionPrompt string
	SectionTitle   string
	ProjectTitle   string
	Style          string
	MinWords       int
	MaxWords       int
}

// GeneratedText is the gateway's single textual completion.
type GeneratedText struct {
	GeneratedContent string `json:"generated_content"`
}

// WordLimitCheck is the advisory result of a word-bound check.
type WordLimitCheck struct {
	Valid     bool   `json:"valid"`
	WordCount int    `json:"word_count"`
	Message   string `json:"message"`
}

// TextGenerator is the boundary to the external generative-text provider.
// Both calls are synchronous request/response with no retained state.
type TextGenerator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GeneratedText, error)
	Revise(ctx context.Context, req *ReviseRequest) (*GeneratedText, error)
}
