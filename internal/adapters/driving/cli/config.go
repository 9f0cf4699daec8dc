package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and change persistent configuration.

Available keys:
  output.precision       decimals in rendered numbers (integer)
  output.tableau         always print the final tableau (true/false)
  problem.default_sense  objective sense new problems start with (maximize/minimize)
  data.dir               problem library directory (path)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(false); err != nil {
		return err
	}

	cmd.Printf("Configuration (%s)\n\n", settingsService.Path())

	precision := "(default)"
	if p := settingsService.OutputPrecision(); p > 0 {
		precision = strconv.Itoa(p)
	}
	dataDir := settingsService.DataDir()
	if dataDir == "" {
		dataDir = "(default)"
	}

	cmd.Printf("  output.precision       %s\n", precision)
	cmd.Printf("  output.tableau         %t\n", settingsService.ShowTableau())
	cmd.Printf("  problem.default_sense  %s\n", settingsService.DefaultSense())
	cmd.Printf("  data.dir               %s\n", dataDir)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureServices(false); err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "output.precision":
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, value)
		}
		if err := settingsService.SetOutputPrecision(p); err != nil {
			return err
		}
	case "output.tableau":
		show, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidInput, value)
		}
		if err := settingsService.SetShowTableau(show); err != nil {
			return err
		}
	case "problem.default_sense":
		if err := settingsService.SetDefaultSense(domain.Sense(value)); err != nil {
			return err
		}
	case "data.dir":
		if err := settingsService.SetDataDir(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown configuration key %q", domain.ErrInvalidInput, key)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
