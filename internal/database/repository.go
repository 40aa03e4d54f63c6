package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/search"
)

const DefaultTable = "bylaw_embeddings"

// Every signal is computed in one round trip. The composite only orders and
// bounds the rows; callers recompute it from the returned signals.
const searchQueryTemplate = `
	WITH query AS (
		SELECT $1::vector AS embedding, websearch_to_tsquery('english', $2) AS tsquery
	),
	scored AS (
		SELECT
			c.id,
			COALESCE(c.title, '') AS title,
			COALESCE(c.code, '') AS code,
			COALESCE(c.slug, '') AS slug,
			COALESCE(c.content, '') AS content,
			COALESCE(1 - (c.embedding <=> query.embedding), 0)::float8 AS semantic_score,
			COALESCE(ts_rank_cd(to_tsvector('english', COALESCE(c.title, '') || ' ' || COALESCE(c.content, '')), query.tsquery), 0)::float8 AS fts_score,
			COALESCE(similarity(COALESCE(c.title, '') || ' ' || COALESCE(c.content, ''), $2), 0)::float8 AS fuzzy_score,
			COALESCE(to_tsvector('english', COALESCE(c.title, '') || ' ' || COALESCE(c.content, '')) @@ query.tsquery, false) AS fts_match,
			(COALESCE(c.title, '') ILIKE $3 OR COALESCE(c.code, '') ILIKE $3) AS title_code_match,
			COALESCE(c.content, '') ILIKE $3 AS content_match
		FROM %s AS c, query
	),
	ranked AS (
		SELECT
			*,
			$6::float8 * semantic_score
				+ $7::float8 * fts_score
				+ $8::float8 * fuzzy_score
				+ CASE WHEN semantic_score > $4::float8 AND fts_match THEN $9::float8 ELSE 0 END
				+ CASE WHEN title_code_match THEN $10::float8 ELSE 0 END
				+ CASE WHEN content_match THEN $11::float8 ELSE 0 END AS composite
		FROM scored
		WHERE semantic_score > $4::float8
		   OR fts_match
		   OR fuzzy_score > $5::float8
		   OR title_code_match
		   OR content_match
	)
	SELECT id, title, code, slug, content, semantic_score, fts_score, fuzzy_score, fts_match
	FROM ranked
	ORDER BY composite DESC, id
	LIMIT $12::int`

func (db *DB) searchQuery() string {
	return fmt.Sprintf(searchQueryTemplate, pgx.Identifier{db.table}.Sanitize())
}

// Search returns the relevance signals of the best search.MaxCandidates rows
// matching at least one channel: vector similarity, full-text, trigram
// similarity or substring.
func (db *DB) Search(ctx context.Context, queryText string, queryEmbedding []float32) ([]corpus.Signals, error) {
	rows, err := db.Pool.Query(ctx, db.searchQuery(),
		pgvector.NewVector(queryEmbedding),
		queryText,
		likePattern(queryText),
		corpus.SemanticThreshold,
		corpus.FuzzyThreshold,
		search.SemanticWeight,
		search.FTSWeight,
		search.FuzzyWeight,
		search.CooccurrenceBonus,
		search.TitleCodeBonus,
		search.ContentBonus,
		search.MaxCandidates,
	)
	if err != nil {
		return nil, classifyError(fmt.Errorf("hybrid search failed: %w", err))
	}

	defer rows.Close()

	signals := make([]corpus.Signals, 0, search.MaxCandidates)
	for rows.Next() {
		var s corpus.Signals

		err := rows.Scan(
			&s.Entry.ID,
			&s.Entry.Title,
			&s.Entry.Code,
			&s.Entry.Slug,
			&s.Entry.Content,
			&s.SemanticScore,
			&s.FTSScore,
			&s.FuzzyScore,
			&s.FTSMatch,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		signals = append(signals, s)
	}

	// Rows errors catch
	if err := rows.Err(); err != nil {
		return nil, classifyError(fmt.Errorf("row iteration error: %w", err))
	}

	return signals, nil
}

// likePattern builds a case-insensitive containment pattern, escaping LIKE metacharacters.
func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + escaped + "%"
}
