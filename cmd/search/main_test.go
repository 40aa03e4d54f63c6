package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/metrics"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/search"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/search/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewContainer_CountsRecoveredPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockSearcher(ctrl)
	searcher.EXPECT().
		Search(gomock.Any(), "fences").
		DoAndReturn(func(ctx context.Context, rawQuery string) (*search.Response, error) {
			panic("store driver bug")
		})

	container := newContainer(searcher)
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/semantic-search", "500")
	before := testutil.ToFloat64(counter)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/semantic-search?q=fences", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestNewContainer_ServesOpenAPIAndMetrics(t *testing.T) {
	container := newContainer(search.NewUnavailableService(search.ErrConfiguration))

	for _, path := range []string{"/api/openapi.json", "/metrics"} {
		recorder := httptest.NewRecorder()
		container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, recorder.Code, path)
	}
}
