package gpt

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type Client struct {
	Client  *openai.Client
	ModelID string
}

func NewClient(apiKey string, baseURL string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}

	return &Client{
		Client:  openai.NewClientWithConfig(clientCfg),
		ModelID: model,
	}, nil
}
