package search

const (
	// RelevanceCutoff is the fraction of the best composite a candidate must reach.
	RelevanceCutoff = 0.6
	// MaxSimilarity caps the reported similarity.
	MaxSimilarity = 0.99
)

// Normalize drops candidates below RelevanceCutoff of the best composite and
// rescales the rest relative to it. Input order is preserved.
func Normalize(candidates []Candidate) []Result {
	results := []Result{}
	if len(candidates) == 0 {
		return results
	}

	maxScore := candidates[0].RawSimilarity
	for _, c := range candidates[1:] {
		if c.RawSimilarity > maxScore {
			maxScore = c.RawSimilarity
		}
	}
	if maxScore <= 0 {
		return results
	}

	threshold := maxScore * RelevanceCutoff
	for _, c := range candidates {
		if c.RawSimilarity < threshold {
			continue
		}
		results = append(results, Result{
			ID:         c.ID,
			Title:      c.Title,
			Code:       c.Code,
			Slug:       c.Slug,
			Content:    c.Content,
			Similarity: min(MaxSimilarity, c.RawSimilarity/maxScore),
		})
	}

	return results
}
