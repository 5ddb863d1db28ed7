// Package ai isolates the generative-text provider behind a small interface
// so its latency and failure modes never reach the data model. Callers treat
// every error as "use the fallback", never as fatal.
package ai

import (
	"context"
)

// Section is one generated proposal block.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// TextGenerator produces free text and structured proposal sections.
type TextGenerator interface {
	// GenerateText returns a free-text completion for the prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateSections returns exactly the sections the prompt asks for,
	// parsed from the model's JSON output.
	GenerateSections(ctx context.Context, prompt string) ([]Section, error)
}

// Disabled is a TextGenerator used when no API key is configured. Every call
// fails, which callers already translate into their fallbacks.
type Disabled struct{}

func (Disabled) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) GenerateSections(ctx context.Context, prompt string) ([]Section, error) {
	return nil, ErrNotConfigured
}
