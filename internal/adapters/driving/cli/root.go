// Package cli provides the cobra command-line interface for Simplexa.
// It is a driving adapter: commands collect input, call core services and
// format their output; no algorithmic logic lives here.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/solvio-labs/simplexa/internal/adapters/driven/config/file"
	"github.com/solvio-labs/simplexa/internal/adapters/driven/storage/sqlite"
	"github.com/solvio-labs/simplexa/internal/core/ports/driven"
	"github.com/solvio-labs/simplexa/internal/core/ports/driving"
	"github.com/solvio-labs/simplexa/internal/core/services"
	"github.com/solvio-labs/simplexa/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	dataDirFlag string
)

// Services used by commands. Set by ensureServices, or injected directly
// by tests.
var (
	solverService   driving.SolverService
	problemService  driving.ProblemService
	settingsService driving.SettingsService
	configStore     driven.ConfigStore

	// libraryStore is kept so Execute can close the database on exit.
	libraryStore *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "simplexa",
	Short: "An interactive linear-program solver",
	Long: `Simplexa solves linear programs with the tableau Simplex method,
using the Big-M technique for ≥ and = constraints.

Problems are defined in TOML files, entered interactively in the TUI, or
recalled from the problem library.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation launches the interactive shell.
		return runTUI(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "override the data directory (default ~/.simplexa)")
}

// ensureServices lazily wires the adapters and services a command needs.
// The solver has no dependencies; the problem library opens SQLite on
// first use only, so read-only commands never touch the data directory.
func ensureServices(needLibrary bool) error {
	if solverService == nil {
		solverService = services.NewSolverService()
	}

	if configStore == nil {
		store, err := configfile.NewConfigStore(dataDirFlag)
		if err != nil {
			return fmt.Errorf("opening config store: %w", err)
		}
		configStore = store
	}

	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}

	if needLibrary && problemService == nil {
		// The flag wins over the configured data directory.
		dataDir := dataDirFlag
		if dataDir == "" {
			dataDir = settingsService.DataDir()
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("opening problem library: %w", err)
		}
		libraryStore = store
		problemService = services.NewProblemService(store.ProblemStore())
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if libraryStore != nil {
			_ = libraryStore.Close()
		}
	}()
	return rootCmd.Execute()
}
