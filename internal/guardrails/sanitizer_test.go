package guardrails

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrEmptyQuery},
		{name: "only whitespace", raw: "   \n\t ", wantErr: ErrEmptyQuery},
		{name: "trims", raw: "  fences in backyards  ", want: "fences in backyards"},
		{name: "collapses line breaks", raw: "fence\r\nheight\nrules", want: "fence height rules"},
		{name: "exactly max length", raw: strings.Repeat("a", MaxQueryLength), want: strings.Repeat("a", MaxQueryLength)},
		{name: "too long", raw: strings.Repeat("a", MaxQueryLength+1), wantErr: ErrQueryTooLong},
		{name: "too long before trimming", raw: strings.Repeat("a", MaxQueryLength) + "  ", wantErr: ErrQueryTooLong},
		{name: "multibyte counted as code points", raw: strings.Repeat("é", MaxQueryLength), want: strings.Repeat("é", MaxQueryLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
