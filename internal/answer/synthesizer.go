package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/llm"
)

var ErrEmptyAnswer = errors.New("model returned an empty answer")

const defaultMaxTokens = 2000

// Synthesizer writes a grounded answer from retrieved passages.
type Synthesizer struct {
	client    llm.Client
	maxTokens int
}

func NewSynthesizer(client llm.Client, maxTokens int) *Synthesizer {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Synthesizer{
		client:    client,
		maxTokens: maxTokens,
	}
}

// Synthesize issues one deterministic generation call. Callers decide how to
// degrade on error; Synthesize itself never retries.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, passages []Passage) (string, error) {
	if len(passages) == 0 {
		return "", fmt.Errorf("no passages to ground an answer")
	}

	response, err := s.client.InvokeModel(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserTurn(query, passages),
		MaxTokens:   s.maxTokens,
		Temperature: 0.0, // Deterministic
	})
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}
	if response == nil || strings.TrimSpace(response.Content) == "" {
		return "", ErrEmptyAnswer
	}

	return strings.TrimSpace(response.Content), nil
}
