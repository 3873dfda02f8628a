package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// ProviderSettingsInput is the DTO for updating one provider's
// credential and prompt. Nil fields are left unchanged.
type ProviderSettingsInput struct {
	APIKey   *string `json:"api_key"`
	Prompt   *string `json:"prompt"`
	SiteURL  *string `json:"site_url"`
	SiteName *string `json:"site_name"`
}

// ProviderSettings is one provider's stored configuration as returned
// to the admin panel. The API key itself is never echoed back.
type ProviderSettings struct {
	APIKeySet bool   `json:"api_key_set"`
	Prompt    string `json:"prompt"`
	SiteURL   string `json:"site_url,omitempty"`
	SiteName  string `json:"site_name,omitempty"`
}

// AllSettings is the full admin settings view.
type AllSettings struct {
	ActiveProvider domain.AIProvider                      `json:"active_provider"`
	Providers      map[domain.AIProvider]ProviderSettings `json:"providers"`
}

// ProviderStatus is one row of the configuration status panel.
type ProviderStatus struct {
	Provider  domain.AIProvider `json:"provider"`
	Active    bool              `json:"active"`
	APIKeySet bool              `json:"api_key_set"`
	PromptSet bool              `json:"prompt_set"`
}

// SettingsService defines the admin provider-configuration contract.
type SettingsService interface {
	GetAll(ctx context.Context) (*AllSettings, error)
	UpdateProvider(ctx context.Context, provider domain.AIProvider, input ProviderSettingsInput) error
	SetActiveProvider(ctx context.Context, provider domain.AIProvider) error
	Status(ctx context.Context) ([]ProviderStatus, error)
}

type settingsService struct {
	repo port.SettingsRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(repo port.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// providerKeys maps a provider to its settings keys. Only OpenRouter has
// site metadata keys.
func providerKeys(provider domain.AIProvider) (apiKey, prompt, siteURL, siteName string) {
	switch provider {
	case domain.ProviderGemini:
		return domain.SettingGeminiAPIKey, domain.SettingGeminiPrompt, "", ""
	case domain.ProviderDeepseek:
		return domain.SettingDeepseekAPIKey, domain.SettingDeepseekPrompt, "", ""
	case domain.ProviderOpenRouter:
		return domain.SettingOpenRouterAPIKey, domain.SettingOpenRouterPrompt,
			domain.SettingOpenRouterSiteURL, domain.SettingOpenRouterSiteName
	}
	return "", "", "", ""
}

func (s *settingsService) GetAll(ctx context.Context) (*AllSettings, error) {
	active, err := s.repo.Get(ctx, domain.SettingAIProvider)
	if err != nil {
		return nil, err
	}
	if active == "" {
		active = string(domain.ProviderGemini)
	}

	out := &AllSettings{
		ActiveProvider: domain.AIProvider(active),
		Providers:      make(map[domain.AIProvider]ProviderSettings, 3),
	}
	for _, provider := range []domain.AIProvider{domain.ProviderGemini, domain.ProviderDeepseek, domain.ProviderOpenRouter} {
		settings, err := s.providerSettings(ctx, provider)
		if err != nil {
			return nil, err
		}
		out.Providers[provider] = *settings
	}
	return out, nil
}

func (s *settingsService) providerSettings(ctx context.Context, provider domain.AIProvider) (*ProviderSettings, error) {
	apiKeyName, promptName, siteURLName, siteNameName := providerKeys(provider)

	var apiKey, prompt, siteURL, siteName string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		apiKey, err = s.repo.Get(gctx, apiKeyName)
		return err
	})
	g.Go(func() (err error) {
		prompt, err = s.repo.Get(gctx, promptName)
		return err
	})
	if siteURLName != "" {
		g.Go(func() (err error) {
			siteURL, err = s.repo.Get(gctx, siteURLName)
			return err
		})
		g.Go(func() (err error) {
			siteName, err = s.repo.Get(gctx, siteNameName)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("settings.providerSettings %s: %w", provider, err)
	}

	return &ProviderSettings{
		APIKeySet: apiKey != "",
		Prompt:    prompt,
		SiteURL:   siteURL,
		SiteName:  siteName,
	}, nil
}

func (s *settingsService) UpdateProvider(ctx context.Context, provider domain.AIProvider, input ProviderSettingsInput) error {
	if !provider.Valid() {
		return domain.ErrUnknownProvider
	}
	apiKeyName, promptName, siteURLName, siteNameName := providerKeys(provider)

	if input.APIKey != nil {
		if err := s.repo.Set(ctx, apiKeyName, *input.APIKey); err != nil {
			return err
		}
	}
	if input.Prompt != nil {
		if err := s.repo.Set(ctx, promptName, *input.Prompt); err != nil {
			return err
		}
	}
	if input.SiteURL != nil && siteURLName != "" {
		if err := s.repo.Set(ctx, siteURLName, *input.SiteURL); err != nil {
			return err
		}
	}
	if input.SiteName != nil && siteNameName != "" {
		if err := s.repo.Set(ctx, siteNameName, *input.SiteName); err != nil {
			return err
		}
	}
	return nil
}

func (s *settingsService) SetActiveProvider(ctx context.Context, provider domain.AIProvider) error {
	if !provider.Valid() {
		return domain.ErrUnknownProvider
	}
	return s.repo.Set(ctx, domain.SettingAIProvider, string(provider))
}

// Status runs the "check current configuration" panel: per-provider
// key/prompt presence, looked up concurrently across all providers.
func (s *settingsService) Status(ctx context.Context) ([]ProviderStatus, error) {
	active, err := s.repo.Get(ctx, domain.SettingAIProvider)
	if err != nil {
		return nil, err
	}
	if active == "" {
		active = string(domain.ProviderGemini)
	}

	providers := []domain.AIProvider{domain.ProviderGemini, domain.ProviderDeepseek, domain.ProviderOpenRouter}
	statuses := make([]ProviderStatus, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, provider := range providers {
		g.Go(func() error {
			apiKeyName, promptName, _, _ := providerKeys(provider)
			apiKey, err := s.repo.Get(gctx, apiKeyName)
			if err != nil {
				return err
			}
			prompt, err := s.repo.Get(gctx, promptName)
			if err != nil {
				return err
			}
			statuses[i] = ProviderStatus{
				Provider:  provider,
				Active:    string(provider) == active,
				APIKeySet: apiKey != "",
				PromptSet: prompt != "",
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("settings.Status: %w", err)
	}
	return statuses, nil
}
