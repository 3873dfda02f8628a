package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigFetch wraps any failure while resolving the active provider
	// configuration from the store. The caller must treat the whole config
	// as unusable rather than partially filled.
	ErrConfigFetch = errors.New("failed to load AI settings")

	// ErrMissingCredential indicates the configured API key is blank or
	// whitespace-only. Checked before any network call.
	ErrMissingCredential = errors.New("API key is required")

	// ErrEmptyResponse indicates the provider call succeeded but carried
	// no textual content in the expected response field.
	ErrEmptyResponse = errors.New("no content in provider response")

	// ErrMalformedResponse indicates the provider reply was not valid JSON
	// or did not contain a listings array.
	ErrMalformedResponse = errors.New("failed to parse AI response")

	// ErrNoValidListings indicates the reply parsed but contained zero
	// well-formed listing records.
	ErrNoValidListings = errors.New("no valid listings found in response")
)

// HTTPError is returned when a provider replies with a non-success status.
// It carries the provider's own error message for display to the user.
type HTTPError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}
