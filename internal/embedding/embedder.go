package embedding

import (
	"context"
	"errors"
	"fmt"
)

// ErrProvider wraps every embedding failure: transport errors, empty or
// malformed vectors.
var ErrProvider = errors.New("embedding provider error")

// Embedder turns text into a fixed dimension vector.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, text string) ([]float32, error)
}

func validateVector(vector []float32, dimensions int) error {
	if len(vector) == 0 {
		return fmt.Errorf("empty embedding response: %w", ErrProvider)
	}
	if dimensions > 0 && len(vector) != dimensions {
		return fmt.Errorf("embedding has %d dimensions, expected %d: %w", len(vector), dimensions, ErrProvider)
	}
	return nil
}
