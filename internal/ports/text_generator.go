package ports

import "context"

// Contract for an external text-generation service.
type TextGenerator interface {
	// Return the generated text for a single prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
