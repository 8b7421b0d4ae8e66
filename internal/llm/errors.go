package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the provider credential is missing. This is a
	// startup misconfiguration, fatal to the adapter but not the process.
	ErrNotConfigured = errors.New("api key is not configured")
	// ErrInvalidInput means the goal or video list was missing or empty.
	ErrInvalidInput = errors.New("goal and videos are required")
	// ErrEmptyResponse means the provider answered successfully but produced
	// no usable text.
	ErrEmptyResponse = errors.New("no text content in response")
	// ErrSafetyBlocked means the provider suppressed the output via its
	// content policy.
	ErrSafetyBlocked = errors.New("content was blocked by safety filters")
)

// ProviderError is a transport or HTTP-level failure talking to a provider.
// It is never retried here; retry policy belongs to the caller.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}
