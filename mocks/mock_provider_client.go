package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProviderClient is a mock implementation of port.ProviderClient.
type MockProviderClient struct {
	mock.Mock
}

func (m *MockProviderClient) Send(ctx context.Context, systemPrompt, rawText string) (string, error) {
	args := m.Called(ctx, systemPrompt, rawText)
	return args.String(0), args.Error(1)
}
