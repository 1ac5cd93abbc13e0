package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tensorsched/internal/builder"
	"github.com/vk/tensorsched/internal/config"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/target"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *config.Model
	targets *target.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and target
// registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Merge all configuration paths into a single collection for the loader.
	var configPaths []string
	if appConfig.ModelPath != "" {
		configPaths = append(configPaths, appConfig.ModelPath)
	}
	if appConfig.TargetsPath != "" {
		configPaths = append(configPaths, appConfig.TargetsPath)
	}

	// Load all configuration into the format-agnostic model first.
	cfgModel, err := loader.Load(ctx, configPaths...)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	// Build and register a backend per loaded target definition.
	registry := target.NewRegistry()
	for _, def := range cfgModel.Targets {
		backend, err := builder.BuildBackend(def)
		if err != nil {
			// A malformed target description is a fatal startup error.
			panic(err)
		}
		if err := registry.Register(backend); err != nil {
			panic(err)
		}
	}
	logger.Debug("Target backends registered.", "count", len(cfgModel.Targets))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfgModel,
		targets: registry,
	}
}

// Targets returns the application's target registry. This is primarily for
// testing.
func (a *App) Targets() *target.Registry {
	return a.targets
}
