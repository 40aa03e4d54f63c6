package search

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)
	ws.
		Path("/api").
		Produces(restful.MIME_JSON)

	ws.Route(ws.GET("/semantic-search").
		To(handler.SemanticSearch).
		Doc("Hybrid bylaw search with a grounded answer").
		Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
		Param(ws.QueryParameter("q", "Question or keywords, at most 200 characters").DataType("string").Required(true)).
		Writes(Response{}).
		Returns(200, "OK", Response{}).
		Returns(400, "Bad Request", middleware.ErrorResponse{}).
		Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.Route(ws.GET("/health").
		To(handler.Health).
		Doc("Health check").
		Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
		Writes(HealthResponse{}).
		Returns(200, "OK", HealthResponse{}))

	container.Add(ws)
}
