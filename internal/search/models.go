package search

import "github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"

// Candidate is a corpus entry with its component scores and composite.
type Candidate struct {
	corpus.Entry
	SemanticScore     float64
	FTSScore          float64
	FuzzyScore        float64
	FTSMatch          bool
	ExactBonus        float64
	CooccurrenceBonus float64
	RawSimilarity     float64
}

type Result struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Code       string  `json:"code"`
	Slug       string  `json:"slug"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity" description:"Relative relevance in [0, 0.99]"`
}

type Response struct {
	Results []Result `json:"results"`
	Answer  *string  `json:"answer" description:"Grounded answer, null when unavailable"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func emptyResponse() *Response {
	return &Response{Results: []Result{}}
}
