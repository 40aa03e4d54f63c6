package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/bylaw-search/internal/setup"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	query := flag.String("q", "", "The bylaw question to search for")
	flag.Parse()

	cfg := setup.LoadConfig()
	// stdout carries the JSON response
	log.Logger = logger.NewWithWriter(os.Stderr, cfg.LogLevel, "console")

	if err := run(context.Background(), cfg, *query); err != nil {
		log.Error().Err(err).Msg("Search failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *setup.Config, query string) error {
	deps, err := setup.Wire(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	response, err := deps.Searcher.Search(ctx, query)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

