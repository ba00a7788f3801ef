package llm

import "context"

// Provider sends a single prompt to a hosted model and returns the
// completion text. One synchronous exchange, no retry, no streaming.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
