package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/answer"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/database"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/embedding"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/guardrails"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/llm"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/redis"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/search"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DefaultGenerationModel = "gpt-4o-mini"

const (
	dbConnectTimeout  = 2 * time.Second
	dbMaxIdleTime     = 30 * time.Second
	redisMaxRetries   = 3
	embeddingCacheKey = "embedding:"
)

type Dependencies struct {
	Searcher search.Searcher
	DB       *database.DB
	Redis    *goredis.Client
}

func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if d.DB != nil {
		d.DB.Close()
	}
}

// Wire validates cfg and builds the search pipeline. An invalid cfg returns
// an error wrapping search.ErrConfiguration before anything is dialed.
func Wire(ctx context.Context, cfg *Config) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &Dependencies{}

	db, err := database.NewWithBackoff(ctx, database.Config{
		URL:            cfg.DatabaseURL,
		Table:          cfg.CorpusTable,
		MaxConns:       int32(cfg.DBMaxConns),
		ConnectTimeout: dbConnectTimeout,
		MaxIdleTime:    dbMaxIdleTime,
	}, cfg.DBConnectRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the vector database: %w", err)
	}
	deps.DB = db

	embedder, err := createEmbedder(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, redisMaxRetries)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Embedding cache disabled")
		} else {
			deps.Redis = redisClient
			prefix := embeddingCacheKey + cfg.embeddingModel() + ":"
			embedder = embedding.NewCachedEmbedder(embedder, redisClient, prefix, cfg.EmbeddingCacheTTL, cfg.EmbeddingDims)
		}
	}

	generator, err := createLLMClient(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.GenerationProvider, err)
	}

	deps.Searcher = search.NewService(
		guardrails.NewGuardrails(),
		embedder,
		db,
		answer.NewSynthesizer(generator, cfg.AnswerMaxTokens),
		cfg.Timeouts(),
	)

	log.Info().
		Str("embedding_provider", cfg.EmbeddingProvider).
		Str("embedding_model", cfg.embeddingModel()).
		Str("generation_provider", cfg.GenerationProvider).
		Str("generation_model", cfg.generationModel()).
		Bool("embedding_cache", deps.Redis != nil).
		Msg("Search pipeline wired")

	return deps, nil
}

func createEmbedder(ctx context.Context, cfg *Config) (embedding.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case ProviderBedrock:
		awsCfg, err := bedrock.LoadConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return embedding.NewBedrockEmbedder(bedrockruntime.NewFromConfig(awsCfg), cfg.embeddingModel(), cfg.EmbeddingDims), nil
	default:
		return embedding.NewOpenAIEmbedder(embedding.OpenAIConfig{
			APIKey:     cfg.OpenAIKey,
			BaseURL:    cfg.OpenAIBaseURL,
			Model:      cfg.embeddingModel(),
			Dimensions: cfg.EmbeddingDims,
		}), nil
	}
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.Client, error) {
	switch cfg.GenerationProvider {
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.generationModel())
	default:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.generationModel())
	}
}
