package ports

import "context"

// Contract for a remote text-generation service.
type ItineraryGenerator interface {
	// Return the first generated text for prompt.
	// Transport failures, timeouts and non-2xx responses are errors.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
