package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"chirp/pkg/api"
	"chirp/pkg/config"
	"chirp/pkg/credentials"
	"chirp/pkg/env"
	"chirp/pkg/logger"
	"chirp/pkg/oauth"
	"chirp/pkg/token"
)

// app wires the full dependency graph for one command invocation.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	store  *token.Store
	tokens *oauth.Manager
	api    *api.Client
}

func newApp() (*app, error) {
	ec, err := env.Detect()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ec)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log := logger.New(level)

	chain := credentials.NewChain(
		credentials.NewFileSource(ec),
		credentials.NewOnePasswordSource(cfg.OnePassItem, log),
	)

	store := token.NewStore(ec, log)
	tokens := oauth.NewManager(chain, store, cfg, log)

	return &app{
		cfg:    cfg,
		logger: log,
		store:  store,
		tokens: tokens,
		api:    api.NewClient(cfg.APIBaseURL, tokens, log),
	}, nil
}

// printJSON writes a command result to stdout, pretty-printed.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
