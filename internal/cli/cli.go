package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/specialistvlad/labpatrol/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `LabPatrol - walks a lab guard's patrol route and finds every single
obstruction that would trap the guard in a loop.

MANIFEST_PATH is a .hcl/.yaml manifest or a directory of them. Use --input
instead to solve one lab file without a manifest.

Defaults may be set with LABPATROL_LOG_FORMAT, LABPATROL_LOG_LEVEL,
LABPATROL_LOG_FILE, LABPATROL_WORKERS, LABPATROL_SOLVER, LABPATROL_ONLY and
LABPATROL_MANIFEST.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := app.ConfigFromEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var parsed *app.Config
	cmd := newRootCommand(defaults, func(cfg *app.Config) { parsed = cfg })
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		// Help or usage was printed.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

func newRootCommand(defaults app.Config, done func(*app.Config)) *cobra.Command {
	cfg := defaults

	cmd := &cobra.Command{
		Use:           "labpatrol [flags] [MANIFEST_PATH]",
		Short:         "Simulate a lab guard's patrol and count loop-inducing obstructions.",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if cmd.Flags().Changed("manifest") {
					return errors.New("manifest given both as flag and as argument")
				}
				cfg.ManifestPath = args[0]
			}
			if cfg.InputPath != "" && !cmd.Flags().Changed("only") {
				// LABPATROL_ONLY selects manifest puzzles; a single input has none.
				cfg.Only = nil
			}
			slog.Debug("Manifest path determined.", "path", cfg.ManifestPath, "input", cfg.InputPath)

			if cfg.ManifestPath == "" && cfg.InputPath == "" && !cfg.ListSolvers {
				slog.Debug("No manifest or input provided, printing usage and exiting.")
				return cmd.Usage()
			}

			config, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}
			done(config)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.ManifestPath, "manifest", "m", defaults.ManifestPath, "Manifest file or directory.")
	flags.StringVarP(&cfg.InputPath, "input", "i", "", "Run a single puzzle from this input file.")
	flags.StringVarP(&cfg.Solver, "solver", "s", defaults.Solver, "Solver for --input.")
	flags.StringSliceVarP(&cfg.Only, "only", "o", defaults.Only, "Run only the named puzzles.")
	flags.IntVarP(&cfg.Workers, "workers", "w", defaults.Workers, "Number of obstruction search workers.")
	flags.StringVar(&cfg.LogFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFile, "log-file", defaults.LogFile, "Also write JSON logs to this file.")
	flags.BoolVar(&cfg.ListSolvers, "list", false, "List registered solvers and exit.")

	return cmd
}
