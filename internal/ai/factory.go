package ai

import (
	"fmt"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// ClientFactory is a function that creates a ProviderClient from resolved
// provider settings.
type ClientFactory func(settings *domain.AISettings) port.ProviderClient

// registry of provider client factories, populated by init() in each
// provider package or explicitly via RegisterProvider.
var providers = map[domain.AIProvider]ClientFactory{}

// RegisterProvider registers a provider client factory by name.
func RegisterProvider(name domain.AIProvider, factory ClientFactory) {
	providers[name] = factory
}

// NewClient creates a ProviderClient for the provider named in settings
// using the registered factory.
func NewClient(settings *domain.AISettings) (port.ProviderClient, error) {
	factory, ok := providers[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, settings.Provider)
	}
	return factory(settings), nil
}
