package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/specialistvlad/labpatrol/internal/executor"
	"github.com/specialistvlad/labpatrol/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	logFile  *os.File
	registry *registry.Registry
	loader   config.Loader
	config   *Config
}

// NewApp is the constructor for the main application. Answers go to outW and
// logs to logW. When no modules are given the core solvers are registered.
// Registering the same solver twice panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	var logFile *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
	}

	var fileW io.Writer
	if logFile != nil {
		fileW = logFile
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW, fileW)
	logger.Debug("Logger configured successfully.", "log_file", cfg.LogFile)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "solvers", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		logFile:  logFile,
		registry: reg,
		loader:   loader,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// ListSolvers writes one line per registered solver.
func (a *App) ListSolvers() error {
	tw := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVER\tDAY\tDESCRIPTION")
	for _, name := range a.registry.Names() {
		s, _ := a.registry.Solver(name)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, s.Day, s.Description)
	}
	return tw.Flush()
}

// Run loads the puzzles, validates them against the registry and solves
// them in declaration order.
func (a *App) Run(ctx context.Context) ([]executor.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadModel(ctx)
	if err != nil {
		return nil, err
	}

	if len(a.config.Only) > 0 {
		model, err = model.Filter(a.config.Only)
		if err != nil {
			return nil, err
		}
	}

	if err := a.registry.ValidateModel(ctx, model); err != nil {
		return nil, err
	}
	a.logger.Debug("Registry validation passed.", "puzzles", len(model.Puzzles))

	if len(model.Puzzles) == 0 {
		a.logger.Warn("No puzzles found, execution not required.")
		return nil, nil
	}

	a.logger.Info("Starting puzzles.", "count", len(model.Puzzles), "workers", a.config.Workers)
	exec := executor.New(model, a.registry, registry.Options{Workers: a.config.Workers}, a.outW)
	results, err := exec.Run(ctx)
	if err != nil {
		return results, fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Execution finished.", "solved", len(results))

	return results, nil
}

// loadModel reads the manifests or, in single-input mode, builds a
// one-puzzle model around the input file.
func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	if a.config.InputPath != "" {
		name := a.config.Solver
		if s, ok := a.registry.Solver(a.config.Solver); ok {
			name = fmt.Sprintf("day%d", s.Day)
		}
		model := config.NewModel()
		err := model.Add(&config.Puzzle{
			Name:   name,
			Solver: a.config.Solver,
			Input:  a.config.InputPath,
			Source: "command line",
		})
		return model, err
	}

	if _, err := os.Stat(a.config.ManifestPath); err != nil {
		return nil, fmt.Errorf("manifest path: %w", err)
	}
	model, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	a.logger.Debug("Manifests loaded.", "path", a.config.ManifestPath, "puzzles", len(model.Puzzles))
	return model, nil
}
