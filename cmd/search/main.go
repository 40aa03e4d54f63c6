package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/metrics"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/middleware"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/search"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/setup"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/setup/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Bylaw Search API",
			Description: "Hybrid zoning bylaw search with grounded answers",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "search", Description: "Bylaw search"}},
	}
}

// newContainer installs the filters outermost first: metrics must see the
// 500 written by RecoverPanic.
func newContainer(searcher search.Searcher) *restful.Container {
	metrics.Register()

	container := restful.NewContainer()

	// Add filters
	container.Filter(middleware.Logger)
	container.Filter(metrics.Filter)
	container.Filter(middleware.RecoverPanic)

	search.RegisterRoutes(container, search.NewHandler(searcher))

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
	container.Handle("/metrics", promhttp.Handler())

	return container
}

func main() {
	cfg := setup.LoadConfig()
	log.Logger = logger.New(cfg.LogLevel, cfg.LogFormat)

	log.Info().Msg("Starting Bylaw Search API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var searcher search.Searcher
	deps, err := setup.Wire(ctx, cfg)
	switch {
	case errors.Is(err, search.ErrConfiguration):
		// keep serving so clients get the configuration error instead of a refused connection
		log.Error().Err(err).Msg("Invalid configuration, search requests will fail")
		searcher = search.NewUnavailableService(err)
	case err != nil:
		log.Fatal().Err(err).Msg("Failed to wire search pipeline")
	default:
		defer deps.Close()
		searcher = deps.Searcher
	}

	container := newContainer(searcher)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.EmbeddingTimeout + cfg.StoreTimeout + cfg.GenerationTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
