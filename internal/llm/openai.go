package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// httpClient is used for all OpenAI requests; the 30s timeout guards against stalled connections
// while context cancellation is still honoured via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature *float64      `json:"temperature,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIProvider implements Provider against the OpenAI chat-completions endpoint.
type OpenAIProvider struct {
	apiKey   string
	endpoint string
}

// NewOpenAI returns a provider authenticating with apiKey.
func NewOpenAI(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: apiKey, endpoint: openAIEndpoint}
}

// Complete sends the two messages and returns the first choice's content.
// A non-2xx reply becomes a *ProviderError with the upstream status and body; no retry.
func (p *OpenAIProvider) Complete(ctx context.Context, cr CompletionRequest) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       cr.Model,
		Temperature: cr.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: cr.System},
			{Role: "user", Content: cr.User},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Name: "OpenAI", Status: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("openai: unmarshal response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: API returned empty choices array (raw: %s)", body)
	}
	return parsed.Choices[0].Message.Content, nil
}
