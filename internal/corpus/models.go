package corpus

// Entry is one bylaw passage as stored in the corpus table.
type Entry struct {
	ID      int64
	Title   string
	Code    string // citation label, e.g. "B.2.1"
	Slug    string
	Content string
}

// Signals holds the per-row relevance signals computed by the store.
// Missing values are reported as 0.
type Signals struct {
	Entry         Entry
	SemanticScore float64 // 1 - cosine distance
	FTSScore      float64
	FuzzyScore    float64
	FTSMatch      bool // full-text match predicate
}

// Candidate predicate thresholds shared by every store and the application scorer.
const (
	SemanticThreshold = 0.25
	FuzzyThreshold    = 0.30
)
