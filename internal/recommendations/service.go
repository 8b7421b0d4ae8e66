package recommendations

import (
	"context"
	"strings"
	"time"

	"videopick-backend/internal/llm"
	"videopick-backend/internal/shared/metrics"
	"videopick-backend/internal/shared/telemetry"
	"videopick-backend/internal/youtube"
)

// RequiredVideoCount is the number of candidate links a request must carry.
const RequiredVideoCount = 3

// MetadataFetcher retrieves catalog metadata for a list of video URLs.
type MetadataFetcher interface {
	FetchAll(ctx context.Context, urls []string) []youtube.Video
}

// Service runs the goal + links -> recommendation pipeline.
type Service struct {
	Fetcher  MetadataFetcher
	LLM      llm.Client
	Provider string
}

// NewService constructs a Service bound to one provider adapter.
func NewService(fetcher MetadataFetcher, client llm.Client, provider string) *Service {
	return &Service{Fetcher: fetcher, LLM: client, Provider: provider}
}

// Recommend validates the request, fetches metadata for all links
// concurrently, and asks the configured provider for a recommendation.
// The fetched items are returned alongside the text so callers can surface
// per-link errors; a fetch failure never aborts the pipeline.
func (s *Service) Recommend(ctx context.Context, goal string, urls []string) (string, []youtube.Video, error) {
	if strings.TrimSpace(goal) == "" || len(urls) != RequiredVideoCount {
		return "", nil, llm.ErrInvalidInput
	}
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			return "", nil, llm.ErrInvalidInput
		}
	}

	metrics.IncRecommendationStarted()

	videos := s.Fetcher.FetchAll(ctx, urls)

	// Errored items go to the model as blank slots; the builder fills in
	// placeholder text. The error itself stays on the item for the caller.
	inputs := make([]llm.Video, len(videos))
	for i, v := range videos {
		if v.Err != "" {
			continue
		}
		inputs[i] = llm.Video{Title: v.Title, Description: v.Description}
	}

	start := time.Now()
	text, err := s.LLM.Analyze(ctx, goal, inputs)
	metrics.ObserveProviderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncRecommendationFailed()
		telemetry.Error("recommendation.failed", map[string]any{
			"provider": s.Provider,
			"error":    err.Error(),
		})
		return "", videos, err
	}

	metrics.IncRecommendationCompleted()
	return text, videos, nil
}
