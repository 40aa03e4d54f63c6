package setup

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/database"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/embedding"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/search"
	"github.com/rs/zerolog/log"
)

const (
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

type Config struct {
	DatabaseURL        string
	CorpusTable        string
	DBMaxConns         int
	DBConnectRetries   int
	EmbeddingProvider  string
	EmbeddingModel     string
	EmbeddingDims      int
	GenerationProvider string
	GenerationModel    string
	ClaudeModelID      string
	OpenAIKey          string
	OpenAIBaseURL      string
	AWSRegion          string
	EmbeddingTimeout   time.Duration
	GenerationTimeout  time.Duration
	StoreTimeout       time.Duration
	AnswerMaxTokens    int
	RedisAddr          string
	RedisPassword      string
	EmbeddingCacheTTL  time.Duration
	Port               string
	LogLevel           string
	LogFormat          string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		DatabaseURL:        getEnv("VECTOR_DATABASE_URL", ""),
		CorpusTable:        getEnv("CORPUS_TABLE", database.DefaultTable),
		DBMaxConns:         getEnvInt("VECTOR_DB_MAX_CONNS", 10),
		DBConnectRetries:   getEnvInt("VECTOR_DB_CONNECT_RETRIES", 5),
		EmbeddingProvider:  strings.ToLower(getEnv("EMBEDDING_PROVIDER", ProviderOpenAI)),
		EmbeddingModel:     getEnv("EMBEDDING_MODEL", ""),
		EmbeddingDims:      getEnvInt("EMBEDDING_DIMENSIONS", 1536),
		GenerationProvider: strings.ToLower(getEnv("GENERATION_PROVIDER", ProviderOpenAI)),
		GenerationModel:    getEnv("GENERATION_MODEL", ""),
		ClaudeModelID:      getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", ""),
		AWSRegion:          getEnv("AWS_REGION", ""),
		EmbeddingTimeout:   getEnvDuration("EMBEDDING_TIMEOUT", 10*time.Second),
		GenerationTimeout:  getEnvDuration("GENERATION_TIMEOUT", 30*time.Second),
		StoreTimeout:       getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		AnswerMaxTokens:    getEnvInt("ANSWER_MAX_TOKENS", 2000),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		EmbeddingCacheTTL:  getEnvDuration("EMBEDDING_CACHE_TTL", 24*time.Hour),
		Port:               getEnv("SEARCH_API_PORT", "8082"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
	}
}

// Validate reports every missing or unsupported setting at once. The error
// wraps search.ErrConfiguration.
func (c *Config) Validate() error {
	var problems []string

	if c.DatabaseURL == "" {
		problems = append(problems, "VECTOR_DATABASE_URL is required")
	}

	for key, provider := range map[string]string{
		"EMBEDDING_PROVIDER":  c.EmbeddingProvider,
		"GENERATION_PROVIDER": c.GenerationProvider,
	} {
		if provider != ProviderOpenAI && provider != ProviderBedrock {
			problems = append(problems, fmt.Sprintf("%s must be %q or %q, got %q", key, ProviderOpenAI, ProviderBedrock, provider))
		}
	}

	if c.uses(ProviderOpenAI) && c.OpenAIKey == "" {
		problems = append(problems, "OPENAI_API_KEY is required for the openai provider")
	}
	if c.uses(ProviderBedrock) && c.AWSRegion == "" {
		problems = append(problems, "AWS_REGION is required for the bedrock provider")
	}
	if c.GenerationProvider == ProviderBedrock && c.generationModel() == "" {
		problems = append(problems, "GENERATION_MODEL or CLAUDE_MODEL_ID is required for bedrock generation")
	}
	if c.EmbeddingDims <= 0 {
		problems = append(problems, "EMBEDDING_DIMENSIONS must be positive")
	}

	if len(problems) == 0 {
		return nil
	}
	// map iteration order is random
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", search.ErrConfiguration, strings.Join(problems, "; "))
}

func (c *Config) uses(provider string) bool {
	return c.EmbeddingProvider == provider || c.GenerationProvider == provider
}

func (c *Config) embeddingModel() string {
	if c.EmbeddingModel != "" {
		return c.EmbeddingModel
	}
	if c.EmbeddingProvider == ProviderBedrock {
		return embedding.DefaultTitanModel
	}
	return embedding.DefaultOpenAIModel
}

func (c *Config) generationModel() string {
	if c.GenerationModel != "" {
		return c.GenerationModel
	}
	if c.GenerationProvider == ProviderBedrock {
		return c.ClaudeModelID
	}
	return DefaultGenerationModel
}

func (c *Config) Timeouts() search.Timeouts {
	return search.Timeouts{
		Embedding:  c.EmbeddingTimeout,
		Store:      c.StoreTimeout,
		Generation: c.GenerationTimeout,
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}
