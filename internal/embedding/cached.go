package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache is the subset of the Redis client used by CachedEmbedder.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedEmbedder memoizes query embeddings in Redis. Cache failures never
// fail a request; the wrapped embedder is called instead.
type CachedEmbedder struct {
	next       Embedder
	client     Cache
	prefix     string
	ttl        time.Duration
	dimensions int
}

// NewCachedEmbedder keys entries by prefix, dimensions and text hash. Cached
// vectors of any other length are treated as misses.
func NewCachedEmbedder(next Embedder, client Cache, prefix string, ttl time.Duration, dimensions int) *CachedEmbedder {
	return &CachedEmbedder{
		next:       next,
		client:     client,
		prefix:     fmt.Sprintf("%s%d:", prefix, dimensions),
		ttl:        ttl,
		dimensions: dimensions,
	}
}

func (c *CachedEmbedder) GenerateEmbeddings(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		vector, decodeErr := decodeVector(raw)
		if decodeErr == nil {
			decodeErr = validateVector(vector, c.dimensions)
		}
		if decodeErr == nil {
			metrics.EmbeddingCacheTotal.WithLabelValues("hit").Inc()
			return vector, nil
		}
		log.Warn().Err(decodeErr).Str("key", key).Msg("Discarding unusable cached embedding")
		metrics.EmbeddingCacheTotal.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.EmbeddingCacheTotal.WithLabelValues("miss").Inc()
	default:
		// A cancelled request must not fall through to the provider
		if ctx.Err() != nil {
			return nil, fmt.Errorf("embedding cache lookup: %v: %w", ctx.Err(), ErrProvider)
		}
		log.Warn().Err(err).Msg("Embedding cache lookup failed")
		metrics.EmbeddingCacheTotal.WithLabelValues("error").Inc()
	}

	vector, err := c.next.GenerateEmbeddings(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, encodeVector(vector), c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to store embedding in cache")
	}

	return vector, nil
}

func (c *CachedEmbedder) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return c.prefix + hex.EncodeToString(sum[:])
}

func encodeVector(vector []float32) []byte {
	buf := make([]byte, 4*len(vector))
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(raw []byte) ([]float32, error) {
	if len(raw) == 0 || len(raw)%4 != 0 {
		return nil, fmt.Errorf("invalid cached vector length %d", len(raw))
	}
	vector := make([]float32, len(raw)/4)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return vector, nil
}
