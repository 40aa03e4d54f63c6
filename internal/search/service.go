package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/answer"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/embedding"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/guardrails"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/metrics"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// ErrConfiguration marks a server that was started without its required settings.
var ErrConfiguration = errors.New("server configuration missing")

// CorpusStore returns the per row retrieval signals for a query.
type CorpusStore interface {
	Search(ctx context.Context, queryText string, queryEmbedding []float32) ([]corpus.Signals, error)
}

type EmbeddingProvider interface {
	GenerateEmbeddings(ctx context.Context, text string) ([]float32, error)
}

// AnswerSynthesizer writes a grounded answer. Errors degrade the answer to null.
type AnswerSynthesizer interface {
	Synthesize(ctx context.Context, query string, passages []answer.Passage) (string, error)
}

// Searcher is what the HTTP handler and the CLI depend on.
type Searcher interface {
	Search(ctx context.Context, rawQuery string) (*Response, error)
}

type Timeouts struct {
	Embedding  time.Duration
	Store      time.Duration
	Generation time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Embedding:  10 * time.Second,
		Store:      5 * time.Second,
		Generation: 30 * time.Second,
	}
}

type Service struct {
	guardrails  *guardrails.Guardrails
	embedder    EmbeddingProvider
	store       CorpusStore
	synthesizer AnswerSynthesizer
	timeouts    Timeouts
}

func NewService(
	guardrails *guardrails.Guardrails,
	embedder EmbeddingProvider,
	store CorpusStore,
	synthesizer AnswerSynthesizer,
	timeouts Timeouts,
) *Service {
	defaults := DefaultTimeouts()
	if timeouts.Embedding <= 0 {
		timeouts.Embedding = defaults.Embedding
	}
	if timeouts.Store <= 0 {
		timeouts.Store = defaults.Store
	}
	if timeouts.Generation <= 0 {
		timeouts.Generation = defaults.Generation
	}

	return &Service{
		guardrails:  guardrails,
		embedder:    embedder,
		store:       store,
		synthesizer: synthesizer,
		timeouts:    timeouts,
	}
}

// Search runs sanitize, screen, embed, retrieve, normalize and synthesize in
// order. Only the synthesize stage degrades instead of failing the request.
func (s *Service) Search(ctx context.Context, rawQuery string) (*Response, error) {
	query, err := guardrails.Sanitize(rawQuery)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if result := s.guardrails.ValidateInput(query); !result.IsValid {
		metrics.SearchRequestsTotal.WithLabelValues("refused").Inc()
		refusal := guardrails.RefusalAnswer
		return &Response{Results: []Result{}, Answer: &refusal}, nil
	}

	log.Debug().Str("query", query).Msg("Search started")

	queryEmbedding, err := s.embed(ctx, query)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	signals, err := s.retrieve(ctx, query, queryEmbedding)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	candidates := Rank(query, signals)
	results := Normalize(candidates)

	log.Info().
		Int("query_len", len([]rune(query))).
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Msg("Retrieval complete")

	if len(results) == 0 {
		metrics.SearchRequestsTotal.WithLabelValues("empty").Inc()
		return emptyResponse(), nil
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	return &Response{
		Results: results,
		Answer:  s.synthesize(ctx, query, results),
	}, nil
}

func (s *Service) embed(ctx context.Context, query string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeouts.Embedding)
	defer cancel()

	start := time.Now()
	vector, err := s.embedder.GenerateEmbeddings(ctx, query)
	observe("embed", start)
	if err != nil {
		log.Error().Err(err).Str("stage", "embed").Msg("Embedding failed")
		if !errors.Is(err, embedding.ErrProvider) {
			err = fmt.Errorf("%w: %w", embedding.ErrProvider, err)
		}
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return vector, nil
}

func (s *Service) retrieve(ctx context.Context, query string, queryEmbedding []float32) ([]corpus.Signals, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeouts.Store)
	defer cancel()

	start := time.Now()
	signals, err := s.store.Search(ctx, query, queryEmbedding)
	observe("retrieve", start)
	if err != nil {
		log.Error().Err(err).Str("stage", "retrieve").Msg("Corpus search failed")
		return nil, fmt.Errorf("failed to search corpus: %w", err)
	}
	return signals, nil
}

func (s *Service) synthesize(ctx context.Context, query string, results []Result) *string {
	if s.synthesizer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeouts.Generation)
	defer cancel()

	passages := make([]answer.Passage, 0, min(len(results), answer.MaxContextPassages))
	for _, r := range results[:min(len(results), answer.MaxContextPassages)] {
		passages = append(passages, answer.Passage{Code: r.Code, Title: r.Title, Content: r.Content})
	}

	start := time.Now()
	text, err := s.synthesizer.Synthesize(ctx, query, passages)
	observe("synthesize", start)
	if err != nil {
		reason := failureReason(err)
		metrics.AnswerFailuresTotal.WithLabelValues(reason).Inc()
		log.Warn().Err(err).Str("stage", "synthesize").Str("reason", reason).Msg("Answer unavailable, returning results only")
		return nil
	}
	return &text
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, answer.ErrEmptyAnswer):
		return "empty"
	default:
		return "provider"
	}
}

func observe(stage string, start time.Time) {
	metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

type unavailableService struct {
	err error
}

// NewUnavailableService answers every well formed query with err, which
// should wrap ErrConfiguration. Query validation still applies.
func NewUnavailableService(err error) Searcher {
	return &unavailableService{err: err}
}

func (u *unavailableService) Search(ctx context.Context, rawQuery string) (*Response, error) {
	if _, err := guardrails.Sanitize(rawQuery); err != nil {
		return nil, err
	}
	return nil, u.err
}
