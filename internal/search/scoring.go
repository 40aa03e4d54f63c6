package search

import (
	"math"
	"sort"
	"strings"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"
)

const (
	SemanticWeight = 0.30
	FTSWeight      = 0.40
	FuzzyWeight    = 0.20

	CooccurrenceBonus = 0.15
	TitleCodeBonus    = 0.25
	ContentBonus      = 0.05

	// MaxCandidates bounds the candidate set handed to the normalizer.
	MaxCandidates = 100
)

// Score computes the exact match bonuses and the weighted composite for one
// row. Non finite component scores count as 0.
func Score(query string, s corpus.Signals) Candidate {
	c := Candidate{
		Entry:         s.Entry,
		SemanticScore: finite(s.SemanticScore),
		FTSScore:      finite(s.FTSScore),
		FuzzyScore:    finite(s.FuzzyScore),
		FTSMatch:      s.FTSMatch,
	}

	needle := strings.ToLower(query)
	if containsFold(c.Title, needle) || containsFold(c.Code, needle) {
		c.ExactBonus += TitleCodeBonus
	}
	if containsFold(c.Content, needle) {
		c.ExactBonus += ContentBonus
	}

	if c.SemanticScore > corpus.SemanticThreshold && c.FTSMatch {
		c.CooccurrenceBonus = CooccurrenceBonus
	}

	c.RawSimilarity = SemanticWeight*c.SemanticScore +
		FTSWeight*c.FTSScore +
		FuzzyWeight*c.FuzzyScore +
		c.CooccurrenceBonus +
		c.ExactBonus

	return c
}

// Rank scores every row, keeps those matching at least one retrieval signal,
// collapses duplicate ids and returns at most MaxCandidates ordered by
// descending composite.
func Rank(query string, signals []corpus.Signals) []Candidate {
	byID := make(map[int64]Candidate, len(signals))
	for _, s := range signals {
		c := Score(query, s)
		if !c.matches() {
			continue
		}
		if existing, ok := byID[c.ID]; ok && existing.RawSimilarity >= c.RawSimilarity {
			continue
		}
		byID[c.ID] = c
	}

	candidates := make([]Candidate, 0, len(byID))
	for _, c := range byID {
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].RawSimilarity != candidates[j].RawSimilarity {
			return candidates[i].RawSimilarity > candidates[j].RawSimilarity
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	return candidates
}

func (c Candidate) matches() bool {
	return c.SemanticScore > corpus.SemanticThreshold ||
		c.FTSMatch ||
		c.FuzzyScore > corpus.FuzzyThreshold ||
		c.ExactBonus > 0
}

func containsFold(haystack, lowerNeedle string) bool {
	return lowerNeedle != "" && strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
