package gemini

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

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements llm.Client against the native Gemini GenerateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Gemini client. A missing key is not fatal here; the
// adapter reports llm.ErrNotConfigured on first use instead.
func NewClient(apiKey, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = "gemini-1.5-flash"
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32  `json:"temperature"`
	TopK            int      `json:"topK"`
	TopP            float32  `json:"topP"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
	StopSequences   []string `json:"stopSequences"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// blockMediumAndAbove applies the same moderation floor across all harm categories.
var blockMediumAndAbove = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// Analyze sends the recommendation prompt to Gemini and returns the plain-text
// answer. All failures map onto the llm error taxonomy; nothing is retried.
func (c *Client) Analyze(ctx context.Context, goal string, videos []llm.Video) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("gemini: %w", llm.ErrNotConfigured)
	}
	if err := llm.ValidateInput(goal, videos); err != nil {
		return "", err
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: llm.BuildPrompt(goal, videos)}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
			StopSequences:   []string{},
		},
		SafetySettings: blockMediumAndAbove,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini request marshal: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	telemetry.Info("gemini.request", map[string]any{"model": c.model, "videos": len(videos)})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", &llm.ProviderError{Provider: "gemini", Message: "request timeout: " + err.Error()}
		}
		return "", &llm.ProviderError{Provider: "gemini", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ProviderError{Provider: "gemini", Message: "read response: " + err.Error()}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &llm.ProviderError{Provider: "gemini", Status: resp.StatusCode, Message: "response parse: " + err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		message := http.StatusText(resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		return "", &llm.ProviderError{Provider: "gemini", Status: resp.StatusCode, Message: message}
	}

	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("gemini: %w", llm.ErrEmptyResponse)
	}
	candidate := parsed.Candidates[0]
	if candidate.FinishReason == "SAFETY" {
		return "", fmt.Errorf("gemini: %w", llm.ErrSafetyBlocked)
	}

	var text strings.Builder
	for _, p := range candidate.Content.Parts {
		text.WriteString(p.Text)
	}
	result := strings.TrimSpace(text.String())
	if result == "" {
		return "", fmt.Errorf("gemini: %w", llm.ErrEmptyResponse)
	}

	telemetry.Info("gemini.response", map[string]any{"model": c.model, "length": len(result)})
	return result, nil
}

var _ llm.Client = (*Client)(nil)
