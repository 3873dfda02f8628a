package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bananadb/internal/ai"
	"bananadb/internal/ai/openrouter"
	"bananadb/internal/domain"
)

func newOpenRouterTestClient(serverURL string) *openrouter.Client {
	settings := &domain.AISettings{
		Provider: domain.ProviderOpenRouter,
		APIKey:   "test-openrouter-key",
		SiteURL:  "https://bananadb.example",
		SiteName: "BananaDB",
	}
	return openrouter.NewClientWithEndpoint(settings, serverURL)
}

func TestOpenRouterClient_Send_Success(t *testing.T) {
	llmJSON := `{"listings":[{"make":"VW","model":"Golf","year":2018,"mileage":95000,"price":14000}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openrouter-key", r.Header.Get("Authorization"))
		// Referral attribution headers
		assert.Equal(t, "https://bananadb.example", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "BananaDB", r.Header.Get("X-Title"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		assert.Equal(t, "anthropic/claude-2", reqBody["model"])
		assert.Equal(t, 0.3, reqBody["temperature"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(chatSuccessResponse(llmJSON))
	}))
	defer server.Close()

	c := newOpenRouterTestClient(server.URL)

	text, err := c.Send(context.Background(), "extract listings", "raw scraped text")

	require.NoError(t, err)
	assert.Equal(t, llmJSON, text)
}

func TestOpenRouterClient_Send_MissingAPIKey(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
	}))
	defer server.Close()

	settings := &domain.AISettings{Provider: domain.ProviderOpenRouter}
	c := openrouter.NewClientWithEndpoint(settings, server.URL)

	_, err := c.Send(context.Background(), "prompt", "text")

	assert.ErrorIs(t, err, ai.ErrMissingCredential)
	assert.Equal(t, 0, requestCount)
}

func TestOpenRouterClient_Send_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer server.Close()

	c := newOpenRouterTestClient(server.URL)

	_, err := c.Send(context.Background(), "prompt", "text")

	var httpErr *ai.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "openrouter", httpErr.Provider)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestOpenRouterClient_Send_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(chatSuccessResponse(""))
	}))
	defer server.Close()

	c := newOpenRouterTestClient(server.URL)

	_, err := c.Send(context.Background(), "prompt", "text")

	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}
