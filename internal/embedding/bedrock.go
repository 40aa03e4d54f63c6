package embedding

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/llm/bedrock"
)

const DefaultTitanModel = "amazon.titan-embed-text-v2:0"

type titanRequest struct {
	InputText  string `json:"inputText"`
	Dimensions int    `json:"dimensions,omitempty"`
	Normalize  bool   `json:"normalize"`
}

type titanResponse struct {
	Embedding []float32 `json:"embedding"`
}

// BedrockEmbedder generates Titan text embeddings through Bedrock runtime.
type BedrockEmbedder struct {
	client     bedrock.Runtime
	modelID    string
	dimensions int
}

func NewBedrockEmbedder(client bedrock.Runtime, modelID string, dimensions int) *BedrockEmbedder {
	if modelID == "" {
		modelID = DefaultTitanModel
	}
	return &BedrockEmbedder{
		client:     client,
		modelID:    modelID,
		dimensions: dimensions,
	}
}

func (e *BedrockEmbedder) GenerateEmbeddings(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(titanRequest{
		InputText:  text,
		Dimensions: e.dimensions,
		Normalize:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal titan request: %w", err)
	}

	output, err := e.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(e.modelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke embedding model: %v: %w", err, ErrProvider)
	}

	var response titanResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding response: %v: %w", err, ErrProvider)
	}

	if err := validateVector(response.Embedding, e.dimensions); err != nil {
		return nil, err
	}
	return response.Embedding, nil
}
