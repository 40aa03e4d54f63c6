package search

import (
	"math"
	"testing"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signals(id int64, title, code, content string, semantic, fts, fuzzy float64, match bool) corpus.Signals {
	return corpus.Signals{
		Entry:         corpus.Entry{ID: id, Title: title, Code: code, Slug: code, Content: content},
		SemanticScore: semantic,
		FTSScore:      fts,
		FuzzyScore:    fuzzy,
		FTSMatch:      match,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		signals          corpus.Signals
		wantExact        float64
		wantCooccurrence float64
		wantRaw          float64
	}{
		{
			name:             "all signals with title match",
			query:            "Fences",
			signals:          signals(1, "Fences", "B.2.1", "Rear yard fences", 0.5, 0.2, 0.1, true),
			wantExact:        0.30,
			wantCooccurrence: 0.15,
			wantRaw:          0.30*0.5 + 0.40*0.2 + 0.20*0.1 + 0.15 + 0.30,
		},
		{
			name:             "code match is case insensitive",
			query:            "b.2.1",
			signals:          signals(1, "Fences", "B.2.1", "Rear yards", 0.1, 0, 0, false),
			wantExact:        0.25,
			wantCooccurrence: 0,
			wantRaw:          0.03 + 0.25,
		},
		{
			name:             "semantic without text match gets no cooccurrence",
			query:            "garden walls",
			signals:          signals(1, "Fences", "B.2.1", "Rear yards", 0.8, 0, 0, false),
			wantRaw:          0.24,
		},
		{
			name:             "text match with weak semantic gets no cooccurrence",
			query:            "yards",
			signals:          signals(1, "Fences", "B.2.1", "Rear yards", 0.25, 0.1, 0, true),
			wantExact:        0.05,
			wantCooccurrence: 0,
			wantRaw:          0.075 + 0.04 + 0.05,
		},
		{
			name:    "non finite components count as zero",
			query:   "parking",
			signals: signals(1, "Fences", "B.2.1", "Rear yards", math.NaN(), math.Inf(1), 0.5, false),
			wantRaw: 0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.query, tt.signals)

			assert.InDelta(t, tt.wantExact, got.ExactBonus, 1e-9)
			assert.InDelta(t, tt.wantCooccurrence, got.CooccurrenceBonus, 1e-9)
			assert.InDelta(t, tt.wantRaw, got.RawSimilarity, 1e-9)
		})
	}
}

func TestRank_DropsRowsWithoutAnySignal(t *testing.T) {
	got := Rank("parking", []corpus.Signals{
		signals(1, "Fences", "B.2.1", "Rear yards", 0.25, 0.3, 0.30, false),
		signals(2, "Parking", "C.1", "Spaces", 0.1, 0, 0, false),
		signals(3, "Lots", "C.2", "Lot sizes", 0.26, 0, 0, false),
		signals(4, "Lots", "C.3", "Lot sizes", 0, 0, 0.31, false),
		signals(5, "Lots", "C.4", "Lot sizes", 0, 0.01, 0, true),
	})

	ids := make([]int64, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []int64{2, 3, 4, 5}, ids)
}

func TestRank_DeduplicatesAndOrders(t *testing.T) {
	got := Rank("fences", []corpus.Signals{
		signals(2, "Hedges", "B.2.2", "fences and hedges", 0.4, 0, 0, false),
		signals(1, "Fences", "B.2.1", "Rear yards", 0.1, 0, 0, false),
		signals(2, "Hedges", "B.2.2", "fences and hedges", 0.9, 0, 0, false),
		signals(3, "Walls", "B.2.3", "Walls", 0.5, 0, 0, false),
		signals(4, "Gates", "B.2.4", "Walls", 0.5, 0, 0, false),
	})

	require.Len(t, got, 4)
	assert.Equal(t, int64(2), got[0].ID)
	assert.InDelta(t, 0.27+0.05, got[0].RawSimilarity, 1e-9)
	assert.Equal(t, int64(1), got[1].ID)
	// equal composites fall back to ascending id
	assert.Equal(t, int64(3), got[2].ID)
	assert.Equal(t, int64(4), got[3].ID)
}

func TestRank_CapsCandidates(t *testing.T) {
	var rows []corpus.Signals
	for i := 0; i < MaxCandidates+25; i++ {
		rows = append(rows, signals(int64(i+1), "Title", "1", "Body", 0.3+float64(i)*0.001, 0, 0, false))
	}

	got := Rank("zoning", rows)

	require.Len(t, got, MaxCandidates)
	assert.Equal(t, int64(MaxCandidates+25), got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].RawSimilarity, got[i].RawSimilarity)
	}
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank("fences", nil))
}
