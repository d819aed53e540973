package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for experience-to-CV transformation.
// Implementations return the rewritten CV text on success; every failure mode
// (network, provider error, malformed response) comes back as a non-nil error
// so callers classify outcomes on the error value, never on response text.
type Client interface {
	TransformExperience(ctx context.Context, rawText string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// TransformExperience returns ErrNotConfigured.
func (PlaceholderClient) TransformExperience(ctx context.Context, rawText string) (string, error) {
	_ = ctx
	_ = rawText
	return "", ErrNotConfigured
}
