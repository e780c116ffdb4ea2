package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/opencatalog/catalogd/internal/config"
	"github.com/opencatalog/catalogd/internal/ctxlog"
	"github.com/opencatalog/catalogd/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *registry.Registry

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a populated,
// conflict-checked registry. A registration conflict is a fatal
// misconfiguration: NewApp panics rather than serving requests against a
// half-defined fallback chain.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfgModel, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	reg := registry.New(registry.Options{
		CollaboratorsEnabled: cfgModel.AllowDatasetCollaborators,
	})

	if len(modules) == 0 {
		modules, err = resolveModules(cfgModel.Plugins)
		if err != nil {
			panic(err)
		}
	}
	for _, mod := range modules {
		if err := mod.Register(ctx, reg); err != nil {
			// A misconfigured fallback chain is worse than a crashed
			// process; stop before any request is served.
			panic(fmt.Errorf("registering plugin %q: %w", mod.Name(), err))
		}
	}
	logger.Debug("All extension modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    cfgModel,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for
// testing and for in-process route binding.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
