package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client is an interface for invoking text generation models
// This allows mocking in tests without making real API calls
type Client interface {
	InvokeModel(ctx context.Context, request Request) (*Response, error)
}
