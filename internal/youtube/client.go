package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"videopick-backend/internal/shared/telemetry"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3/videos"

// Video holds catalog metadata for one user-supplied link. Either Title and
// Description are populated or Err is, never both.
type Video struct {
	URL         string `json:"url"`
	ID          string `json:"videoId,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Err         string `json:"error,omitempty"`
}

// Client fetches video snippets from the YouTube Data API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a YouTube Data API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

// FetchAll looks up every URL concurrently and returns one Video per input,
// in input order. Failures are recorded per item; FetchAll itself never fails.
func (c *Client) FetchAll(ctx context.Context, urls []string) []Video {
	results := make([]Video, len(urls))
	var wg sync.WaitGroup
	for i, raw := range urls {
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			results[i] = c.fetchOne(ctx, raw)
		}(i, raw)
	}
	wg.Wait()
	return results
}

func (c *Client) fetchOne(ctx context.Context, rawURL string) Video {
	id, ok := ExtractVideoID(rawURL)
	if !ok {
		return Video{URL: rawURL, Err: "Invalid URL"}
	}

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("id", id)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Video{URL: rawURL, ID: id, Err: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Warn("youtube.fetch_failed", map[string]any{
			"video_id": id,
			"error":    err.Error(),
		})
		return Video{URL: rawURL, ID: id, Err: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Video{URL: rawURL, ID: id, Err: fmt.Sprintf("youtube api status %d", resp.StatusCode)}
	}

	var parsed videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Video{URL: rawURL, ID: id, Err: fmt.Sprintf("youtube response parse: %v", err)}
	}
	if len(parsed.Items) == 0 {
		return Video{URL: rawURL, ID: id, Err: "Video not found"}
	}

	snippet := parsed.Items[0].Snippet
	return Video{
		URL:         rawURL,
		ID:          id,
		Title:       snippet.Title,
		Description: snippet.Description,
	}
}
