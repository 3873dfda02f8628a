package ai

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bananadb/internal/config"
	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// Resolver reads the active provider's credential, prompt and site metadata
// from the settings store. Nothing is cached: every Resolve hits the store,
// so credential and prompt edits take effect on the next parse.
type Resolver struct {
	settings port.SettingsRepository
	cfg      *config.AIConfig
}

// NewResolver creates a settings resolver. cfg supplies fallbacks for the
// OpenRouter referral metadata when the admin has not set them.
func NewResolver(settings port.SettingsRepository, cfg *config.AIConfig) *Resolver {
	return &Resolver{settings: settings, cfg: cfg}
}

// Resolve fetches the active provider selection and that provider's
// settings. The per-key lookups run concurrently; if any of them fails the
// whole resolution fails with ErrConfigFetch.
func (r *Resolver) Resolve(ctx context.Context) (*domain.AISettings, error) {
	providerVal, err := r.settings.Get(ctx, domain.SettingAIProvider)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigFetch, err)
	}

	provider := domain.AIProvider(providerVal)
	if providerVal == "" {
		provider = domain.ProviderGemini
	}

	switch provider {
	case domain.ProviderGemini:
		apiKey, prompt, err := r.fetchKeyAndPrompt(ctx, domain.SettingGeminiAPIKey, domain.SettingGeminiPrompt)
		if err != nil {
			return nil, err
		}
		return &domain.AISettings{Provider: provider, APIKey: apiKey, Prompt: prompt}, nil

	case domain.ProviderDeepseek:
		apiKey, prompt, err := r.fetchKeyAndPrompt(ctx, domain.SettingDeepseekAPIKey, domain.SettingDeepseekPrompt)
		if err != nil {
			return nil, err
		}
		return &domain.AISettings{Provider: provider, APIKey: apiKey, Prompt: prompt}, nil

	case domain.ProviderOpenRouter:
		var apiKey, prompt, siteURL, siteName string
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			apiKey, err = r.settings.Get(gctx, domain.SettingOpenRouterAPIKey)
			return err
		})
		g.Go(func() (err error) {
			prompt, err = r.settings.Get(gctx, domain.SettingOpenRouterPrompt)
			return err
		})
		g.Go(func() (err error) {
			siteURL, err = r.settings.Get(gctx, domain.SettingOpenRouterSiteURL)
			return err
		})
		g.Go(func() (err error) {
			siteName, err = r.settings.Get(gctx, domain.SettingOpenRouterSiteName)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigFetch, err)
		}
		if siteURL == "" {
			siteURL = r.cfg.SiteURL
		}
		if siteName == "" {
			siteName = r.cfg.SiteName
		}
		return &domain.AISettings{
			Provider: provider,
			APIKey:   apiKey,
			Prompt:   prompt,
			SiteURL:  siteURL,
			SiteName: siteName,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, providerVal)
	}
}

func (r *Resolver) fetchKeyAndPrompt(ctx context.Context, keyName, promptName string) (string, string, error) {
	var apiKey, prompt string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		apiKey, err = r.settings.Get(gctx, keyName)
		return err
	})
	g.Go(func() (err error) {
		prompt, err = r.settings.Get(gctx, promptName)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrConfigFetch, err)
	}
	return apiKey, prompt, nil
}
