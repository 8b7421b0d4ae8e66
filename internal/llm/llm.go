package llm

import (
	"context"
	"strings"
)

// Video is the normalized metadata handed to a provider for one candidate.
type Video struct {
	Title       string
	Description string
}

// Client abstracts LLM providers for video recommendation.
type Client interface {
	Analyze(ctx context.Context, goal string, videos []Video) (string, error)
}

// ValidateInput checks the shared adapter preconditions. Every provider calls
// it before any network access.
func ValidateInput(goal string, videos []Video) error {
	if strings.TrimSpace(goal) == "" || len(videos) == 0 {
		return ErrInvalidInput
	}
	return nil
}
