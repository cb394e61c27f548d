// Command abacus is a keypad calculator. Without arguments it starts the
// interactive terminal calculator; "run" replays a key script and "eval"
// evaluates an arithmetic expression directly.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gophersatwork/abacus"
	"github.com/gophersatwork/abacus/internal/config"
	"github.com/gophersatwork/abacus/internal/tui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Set up by PersistentPreRunE
	logger *zap.Logger
	cfg    config.Config

	// fsys is swapped for an in-memory filesystem in tests
	fsys afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "abacus - keypad calculator with history and memory",
	Long: `abacus is a keypad calculator.

Keys build an expression one button at a time, with a running total shown
after every operator. Finished calculations go to history; values can be
kept in memory slots.

Run without arguments to start the interactive calculator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(fsys, configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.New(newSession(), tui.ParsePanel(cfg.UI.Panel), logger)
		_, err := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())).Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to the configuration file")

	rootCmd.AddCommand(runCmd, evalCmd)
}

// newLogger builds the zap logger. Logs go to stderr so they never mix with
// command output.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lc.Level != "" {
		level, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// newSession creates a session configured from cfg.
func newSession() *abacus.Session {
	opts := []abacus.Option{
		abacus.WithLogger(logger.Named("session")),
		abacus.WithHistoryLimit(cfg.HistoryLimit),
		abacus.WithMemoryLimit(cfg.MemoryLimit),
	}
	if cfg.Evaluator.Memoize {
		opts = append(opts, abacus.WithEvaluator(abacus.NewMemoEvaluator(nil, cfg.Evaluator.CacheSize)))
	}
	return abacus.New(opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
