package gpt

import (
	"context"
	"fmt"
	"math"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/llm"
	openai "github.com/sashabaranov/go-openai"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.Request) (*llm.Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if request.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: request.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.Prompt,
	})

	output, err := c.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.ModelID,
		Messages:    messages,
		MaxTokens:   request.MaxTokens,
		Temperature: temperature(request.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gpt model. Error: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := output.Choices[0]
	return &llm.Response{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}

// temperature field is omitempty, a literal 0 would fall back to the API default.
func temperature(t float64) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
