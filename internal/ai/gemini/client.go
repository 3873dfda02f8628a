package gemini

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
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel = "gemini-pro"
)

func init() {
	ai.RegisterProvider(domain.ProviderGemini, func(settings *domain.AISettings) port.ProviderClient {
		return NewClient(settings)
	})
}

// Client implements port.ProviderClient using Google's Gemini API.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-backed provider client.
func NewClient(settings *domain.AISettings) *Client {
	return newClient(settings, fmt.Sprintf("%s/%s:generateContent", apiBaseURL, defaultModel))
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(settings *domain.AISettings, endpoint string) *Client {
	return newClient(settings, endpoint)
}

func newClient(settings *domain.AISettings, endpoint string) *Client {
	return &Client{
		apiKey:   settings.APIKey,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

func (c *Client) Send(ctx context.Context, systemPrompt, rawText string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("gemini: %w", ai.ErrMissingCredential)
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": systemPrompt},
					{"text": rawText},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.3,
			"responseMimeType": "application/json",
		},
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
	req.Header.Set("x-goog-api-key", strings.TrimSpace(c.apiKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ai.HTTPError{
			Provider:   "gemini",
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: %w", ai.ErrEmptyResponse)
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("gemini: %w", ai.ErrEmptyResponse)
	}
	return text, nil
}

// geminiResponse models the Gemini generateContent response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
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
