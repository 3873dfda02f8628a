package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bananadb/internal/ai"
	_ "bananadb/internal/ai/gemini"
	"bananadb/internal/config"
	"bananadb/internal/domain"
	"bananadb/internal/port"
	"bananadb/internal/service"
	"bananadb/mocks"
)

func geminiSettingsRepo(apiKey, prompt string) *mocks.MockSettingsRepo {
	repo := new(mocks.MockSettingsRepo)
	repo.On("Get", mock.Anything, domain.SettingAIProvider).Return("gemini", nil)
	repo.On("Get", mock.Anything, domain.SettingGeminiAPIKey).Return(apiKey, nil)
	repo.On("Get", mock.Anything, domain.SettingGeminiPrompt).Return(prompt, nil)
	return repo
}

func TestParseService_Parse_MissingCredential(t *testing.T) {
	repo := geminiSettingsRepo("", "extract listings")
	resolver := ai.NewResolver(repo, &config.AIConfig{})
	svc := service.NewParseService(resolver)

	// The registered factory builds a real client; with a blank key it
	// must fail before reaching the network.
	_, err := svc.Parse(context.Background(), "raw text")

	assert.ErrorIs(t, err, ai.ErrMissingCredential)
}

func TestParseService_Parse_ConfigFetchFailure(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	repo.On("Get", mock.Anything, domain.SettingAIProvider).Return("", assert.AnError)
	resolver := ai.NewResolver(repo, &config.AIConfig{})
	svc := service.NewParseService(resolver)

	_, err := svc.Parse(context.Background(), "raw text")

	assert.ErrorIs(t, err, ai.ErrConfigFetch)
}

func TestParseService_Parse_UnknownProvider(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	repo.On("Get", mock.Anything, domain.SettingAIProvider).Return("gpt-99", nil)
	resolver := ai.NewResolver(repo, &config.AIConfig{})
	svc := service.NewParseService(resolver)

	_, err := svc.Parse(context.Background(), "raw text")

	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestParseService_Parse_PromptPassedToProvider(t *testing.T) {
	repo := geminiSettingsRepo("g-key", "extract listings as json")
	resolver := ai.NewResolver(repo, &config.AIConfig{})
	svc := service.NewParseServiceWithFactory(resolver, func(settings *domain.AISettings) (port.ProviderClient, error) {
		client := new(mocks.MockProviderClient)
		client.On("Send", mock.Anything, "extract listings as json", "raw text").
			Return(`{"listings":[{"make":"BMW","model":"320d","year":2019,"mileage":85000,"price":21500}]}`, nil)
		return client, nil
	})

	listings, err := svc.Parse(context.Background(), "raw text")

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "BMW", listings[0].Make)
}

func TestParseService_Parse_MalformedReply(t *testing.T) {
	repo := geminiSettingsRepo("g-key", "prompt")
	resolver := ai.NewResolver(repo, &config.AIConfig{})
	svc := service.NewParseServiceWithFactory(resolver, func(settings *domain.AISettings) (port.ProviderClient, error) {
		client := new(mocks.MockProviderClient)
		client.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("not json at all", nil)
		return client, nil
	})

	_, err := svc.Parse(context.Background(), "raw text")

	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
}
