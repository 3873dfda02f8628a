package service

import (
	"context"

	"bananadb/internal/ai"
	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// ParseService turns raw scraped listing text into structured listings
// via the currently configured AI provider.
type ParseService interface {
	Parse(ctx context.Context, rawText string) ([]domain.ParsedCarListing, error)
}

type parseService struct {
	resolver  *ai.Resolver
	newClient func(settings *domain.AISettings) (port.ProviderClient, error)
}

// NewParseService creates a ParseService backed by the provider registry.
func NewParseService(resolver *ai.Resolver) ParseService {
	return NewParseServiceWithFactory(resolver, ai.NewClient)
}

// NewParseServiceWithFactory creates a ParseService with a custom client
// factory (for testing).
func NewParseServiceWithFactory(resolver *ai.Resolver, newClient func(settings *domain.AISettings) (port.ProviderClient, error)) ParseService {
	return &parseService{
		resolver:  resolver,
		newClient: newClient,
	}
}

func (s *parseService) Parse(ctx context.Context, rawText string) ([]domain.ParsedCarListing, error) {
	settings, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	client, err := s.newClient(settings)
	if err != nil {
		return nil, err
	}

	raw, err := client.Send(ctx, settings.Prompt, rawText)
	if err != nil {
		return nil, err
	}

	return ai.ParseListings(raw)
}
