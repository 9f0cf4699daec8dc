package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/solvio-labs/simplexa/internal/adapters/driven/problemfile"
	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/logger"
	"github.com/solvio-labs/simplexa/internal/render"
)

var (
	solveJSON     bool
	solveTableau  bool
	solveWatch    bool
	solveDryRun   bool
	solveSaveName string
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem-file>",
	Short: "Solve a linear program from a TOML problem file",
	Long: `Reads a problem definition from a TOML file, converts it to standard
form (injecting slack, excess and artificial variables as needed) and solves
it with the tableau Simplex method.

Unbounded problems and iteration-limit hits are reported as outcomes, not
errors; the final tableau is available for inspection with --tableau.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output the result as JSON")
	solveCmd.Flags().BoolVar(&solveTableau, "tableau", false, "also print the final tableau")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "w", false, "re-solve whenever the problem file changes")
	solveCmd.Flags().BoolVar(&solveDryRun, "dry-run", false, "print the initial standard-form tableau without solving")
	solveCmd.Flags().StringVar(&solveSaveName, "save", "", "save the problem to the library under this name")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := ensureServices(solveSaveName != ""); err != nil {
		return err
	}

	if solveDryRun {
		return printInitialTableau(cmd, path)
	}

	if err := solveOnce(cmd, path); err != nil {
		return err
	}

	if solveSaveName != "" {
		_, lp, err := problemfile.Load(path)
		if err != nil {
			return err
		}
		saved, err := problemService.Save(cmd.Context(), solveSaveName, lp)
		if err != nil {
			return fmt.Errorf("saving to library: %w", err)
		}
		cmd.Printf("Saved to library as %q (%s)\n", saved.Name, saved.ID)
	}

	if solveWatch {
		return watchAndSolve(cmd, path)
	}
	return nil
}

// solveOnce loads, solves and prints one pass over the problem file.
func solveOnce(cmd *cobra.Command, path string) error {
	name, lp, err := problemfile.Load(path)
	if err != nil {
		return err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logger.Info("solving %q", name)

	result, catalog, err := solverService.Solve(lp)
	if err != nil {
		return err
	}

	if solveJSON {
		return outputResultJSON(cmd, name, result, catalog)
	}
	return outputResultText(cmd, name, result, catalog)
}

// printInitialTableau builds the standard-form tableau without pivoting.
func printInitialTableau(cmd *cobra.Command, path string) error {
	name, lp, err := problemfile.Load(path)
	if err != nil {
		return err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	tab, catalog, err := solverService.BuildTableau(lp)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	if w, ok := terminalWidth(); ok {
		opts.MaxWidth = w
	}
	cmd.Printf("%s:\n", name)
	cmd.Println("Initial tableau:")
	cmd.Print(render.Tableau(tab, catalog, opts))
	return nil
}

// watchAndSolve re-runs solveOnce on every write to the problem file until
// interrupted.
func watchAndSolve(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that write via
	// rename would otherwise drop the watch after the first save.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	cmd.Printf("Watching %s (ctrl+c to stop)\n", path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cmd.Println()
			if err := solveOnce(cmd, path); err != nil {
				// Keep watching through transient parse errors mid-edit.
				cmd.PrintErrf("Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-interrupt:
			return nil
		}
	}
}

// jsonResult is the JSON output shape of a solve run.
type jsonResult struct {
	Problem        string             `json:"problem"`
	Reason         string             `json:"termination_reason"`
	Iterations     int                `json:"iterations"`
	ObjectiveValue *float64           `json:"objective_value,omitempty"`
	Variables      map[string]float64 `json:"variables,omitempty"`
}

func outputResultJSON(cmd *cobra.Command, name string, result *domain.SolveResult, catalog domain.VariableCatalog) error {
	out := jsonResult{
		Problem:    name,
		Reason:     result.Reason.String(),
		Iterations: result.IterationCount,
	}
	if result.Reason == domain.ReasonOptimal {
		objective := result.ObjectiveValue
		out.ObjectiveValue = &objective
		out.Variables = make(map[string]float64, len(catalog))
		for i, v := range catalog {
			out.Variables[v.Label] = result.VariableValues[i]
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultText(cmd *cobra.Command, name string, result *domain.SolveResult, catalog domain.VariableCatalog) error {
	opts := render.DefaultOptions()
	if p := settingsService.OutputPrecision(); p > 0 {
		opts.Precision = p
	}
	if w, ok := terminalWidth(); ok {
		opts.MaxWidth = w
	}

	cmd.Printf("%s:\n", name)
	cmd.Print(render.Solution(result, catalog, opts))
	if solveTableau || settingsService.ShowTableau() || result.Reason != domain.ReasonOptimal {
		cmd.Println()
		cmd.Println("Final tableau:")
		cmd.Print(render.Tableau(result.FinalTableau, catalog, opts))
	}
	return nil
}

// terminalWidth reports the stdout terminal width, when stdout is a
// terminal.
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
