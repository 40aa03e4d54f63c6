package search

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/guardrails"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/middleware"
	"github.com/rs/zerolog/log"
)

const (
	msgConfigurationMissing = "Server configuration missing"
	msgSearchFailed         = "Search failed"
)

type Handler struct {
	searcher Searcher
}

func NewHandler(searcher Searcher) *Handler {
	return &Handler{
		searcher: searcher,
	}
}

// SemanticSearch handles GET /api/semantic-search?q=
func (h *Handler) SemanticSearch(req *restful.Request, resp *restful.Response) {
	query := req.QueryParameter("q")

	response, err := h.searcher.Search(req.Request.Context(), query)
	if err != nil {
		h.writeSearchError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, response)
}

// Health handles GET /api/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) writeSearchError(resp *restful.Response, err error) {
	var capabilityErr *corpus.CapabilityError

	switch {
	case errors.Is(err, guardrails.ErrEmptyQuery), errors.Is(err, guardrails.ErrQueryTooLong):
		middleware.HandleError(resp, err, http.StatusBadRequest)
	case errors.Is(err, ErrConfiguration):
		log.Error().Err(err).Msg("Search rejected, server is not configured")
		middleware.WriteError(resp, msgConfigurationMissing, http.StatusInternalServerError)
	case errors.As(err, &capabilityErr):
		log.Error().Err(err).Str("capability", capabilityErr.Capability).Msg("Corpus store is missing a capability")
		middleware.WriteError(resp, capabilityErr.Message(), http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("Semantic search failed")
		middleware.WriteError(resp, msgSearchFailed, http.StatusInternalServerError)
	}
}
