package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/8thgencore/blip/internal/config"
	"github.com/8thgencore/blip/internal/loopback"
	"github.com/8thgencore/blip/internal/storage"
	"github.com/8thgencore/blip/pkg/extension"
	"github.com/8thgencore/blip/pkg/lime"
	"github.com/8thgencore/blip/pkg/logger"
	"github.com/8thgencore/blip/pkg/logger/sl"
)

// App builds commands and runs them against the in-process loopback
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	processor *loopback.Processor
	base      *extension.Base
}

// New creates a new instance of the application. A non-empty to overrides
// the configured default destination. Logs go to logOut.
func New(configPath, to string, logOut io.Writer) (*App, error) {
	// Load configuration
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if to != "" {
		cfg.Client.To = to
	}

	// Initialize logger
	log := logger.New(logOut, cfg.Env, cfg.Logging.Level)

	// Initialize loopback processor
	processor := loopback.NewProcessor(log, storage.NewEngine())

	opts := []extension.Option{extension.WithLogger(log)}
	if cfg.Client.To != "" {
		opts = append(opts, extension.WithTo(cfg.Client.To))
	}

	return &App{
		cfg:       cfg,
		log:       log,
		processor: processor,
		base:      extension.New(processor, opts...),
	}, nil
}

// Base returns the command builder
func (a *App) Base() *extension.Base {
	return a.base
}

// Build creates a command for method
func (a *App) Build(method lime.Method, uri string, resource any, opts ...extension.CommandOption) (*lime.Command, error) {
	switch method {
	case lime.MethodGet:
		return a.base.GetCommand(uri, opts...), nil
	case lime.MethodSet:
		return a.base.SetCommand(uri, resource, opts...), nil
	case lime.MethodMerge:
		return a.base.MergeCommand(uri, resource, opts...), nil
	case lime.MethodDelete:
		return a.base.DeleteCommand(uri, opts...), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
}

// Process sends cmd through the loopback, bounded by the client timeout
func (a *App) Process(ctx context.Context, cmd *lime.Command) (*lime.Command, error) {
	if cmd == nil {
		return nil, extension.ErrNilCommand
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Client.Timeout)
	defer cancel()

	resp, err := a.base.ProcessCommand(ctx, cmd)
	if err != nil {
		a.log.Error("Failed to process command", sl.Command(cmd), sl.Err(err))
		return nil, err
	}

	return resp, nil
}

// Print writes v to w as indented json
func Print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}
