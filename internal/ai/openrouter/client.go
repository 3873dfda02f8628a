package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bananadb/internal/ai"
	"bananadb/internal/domain"
	"bananadb/internal/port"
)

const (
	apiURL       = "https://openrouter.ai/api/v1/chat/completions"
	defaultModel = "anthropic/claude-2"
)

func init() {
	ai.RegisterProvider(domain.ProviderOpenRouter, func(settings *domain.AISettings) port.ProviderClient {
		return NewClient(settings)
	})
}

// Client implements port.ProviderClient using the OpenRouter chat
// completions API. OpenRouter attributes traffic via the HTTP-Referer and
// X-Title headers, populated from the admin-configured site settings.
type Client struct {
	apiKey   string
	siteURL  string
	siteName string
	endpoint string
	client   *http.Client
}

// NewClient creates an OpenRouter-backed provider client.
func NewClient(settings *domain.AISettings) *Client {
	return newClient(settings, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(settings *domain.AISettings, endpoint string) *Client {
	return newClient(settings, endpoint)
}

func newClient(settings *domain.AISettings, endpoint string) *Client {
	return &Client{
		apiKey:   settings.APIKey,
		siteURL:  settings.SiteURL,
		siteName: settings.SiteName,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

func (c *Client) Send(ctx context.Context, systemPrompt, rawText string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("openrouter: %w", ai.ErrMissingCredential)
	}

	reqBody := map[string]interface{}{
		"model": defaultModel,
		"messages": []map[string]interface{}{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": rawText},
		},
		"temperature":     0.3,
		"response_format": map[string]interface{}{"type": "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(c.apiKey))
	req.Header.Set("HTTP-Referer", c.siteURL)
	req.Header.Set("X-Title", c.siteName)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openrouter API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ai.HTTPError{
			Provider:   "openrouter",
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openrouter: %w", ai.ErrEmptyResponse)
	}
	return parsed.Choices[0].Message.Content, nil
}

// chatResponse models the OpenRouter chat completions response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func errorMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return string(body)
}
