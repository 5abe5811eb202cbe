package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodhub/internal/domain"
)

const defaultBaseURL = "https://api.openai.com"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenAIClient calls the text-completion endpoint. Failures are
// reported as domain.ErrUpstream so the chat layer can degrade to its
// fallback reply.
type OpenAIClient struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
}

func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenAIClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"prompt":     prompt,
		"max_tokens": 100,
	})
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	url := c.BaseURL + "/v1/engines/text-davinci-003/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: completion API returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	if len(body.Choices) == 0 {
		return "", nil
	}
	return body.Choices[0].Text, nil
}
