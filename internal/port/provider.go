package port

import "context"

// ProviderClient abstracts one LLM extraction provider. Implementations
// issue exactly one HTTP request per Send: no retries, no caching, no
// timeout beyond the transport default.
type ProviderClient interface {
	// Send submits the configured system prompt together with the raw
	// pasted listing text and returns the provider's textual reply, which
	// is expected (but not guaranteed) to be a JSON document with a
	// top-level "listings" array.
	Send(ctx context.Context, systemPrompt, rawText string) (string, error)
}
