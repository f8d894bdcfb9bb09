// Package provider abstracts the external generative services the
// analysis orchestrator can delegate to. Providers take a prepared
// prompt and return raw text; interpreting that text is the caller's
// problem.
package provider

import "context"

// Provider is a single configured generative backend.
type Provider interface {
	// Name identifies the provider for provenance stamping and error
	// reporting, e.g. "openai:gpt-4o-mini".
	Name() string

	// Generate sends the prompt and returns the raw response text.
	// Implementations must honor ctx cancellation and deadlines.
	Generate(ctx context.Context, prompt string) (string, error)
}
