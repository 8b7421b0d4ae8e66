package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"videopick-backend/internal/llm"
	"videopick-backend/internal/shared/telemetry"
)

const apiURL = "https://api.groq.com/openai/v1/chat/completions"

// Client implements llm.Client using Groq's OpenAI-compatible chat completions.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Groq client. A missing key is not fatal here; the
// adapter reports llm.ErrNotConfigured on first use instead.
func NewClient(apiKey, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = "llama-3.1-70b-versatile"
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float32       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Analyze sends the recommendation prompt to Groq and returns the plain-text
// answer. All failures map onto the llm error taxonomy; nothing is retried.
func (c *Client) Analyze(ctx context.Context, goal string, videos []llm.Video) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("groq: %w", llm.ErrNotConfigured)
	}
	if err := llm.ValidateInput(goal, videos); err != nil {
		return "", err
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: llm.BuildPrompt(goal, videos)},
		},
		Temperature: 0.7,
		MaxTokens:   2048,
		TopP:        0.95,
		Stream:      false,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("groq request marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	telemetry.Info("groq.request", map[string]any{"model": c.model, "videos": len(videos)})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", &llm.ProviderError{Provider: "groq", Message: "request timeout: " + err.Error()}
		}
		return "", &llm.ProviderError{Provider: "groq", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ProviderError{Provider: "groq", Message: "read response: " + err.Error()}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &llm.ProviderError{Provider: "groq", Status: resp.StatusCode, Message: "response parse: " + err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		message := http.StatusText(resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		return "", &llm.ProviderError{Provider: "groq", Status: resp.StatusCode, Message: message}
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq: %w", llm.ErrEmptyResponse)
	}
	result := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if result == "" {
		return "", fmt.Errorf("groq: %w", llm.ErrEmptyResponse)
	}

	telemetry.Info("groq.response", map[string]any{"model": c.model, "length": len(result)})
	return result, nil
}

var _ llm.Client = (*Client)(nil)
