package cli

import (
	"github.com/spf13/cobra"

	"github.com/solvio-labs/simplexa/internal/adapters/driven/problemfile"
	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/render"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Manage the saved-problem library",
}

var problemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved problems",
	Args:  cobra.NoArgs,
	RunE:  runProblemList,
}

var problemShowCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show a saved problem definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runProblemShow,
}

var problemSolveCmd = &cobra.Command{
	Use:   "solve <id-or-name>",
	Short: "Solve a saved problem",
	Args:  cobra.ExactArgs(1),
	RunE:  runProblemSolve,
}

var problemImportCmd = &cobra.Command{
	Use:   "import <problem-file>",
	Short: "Import a TOML problem file into the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runProblemImport,
}

var problemUpdateCmd = &cobra.Command{
	Use:   "update <id-or-name> <problem-file>",
	Short: "Replace a saved problem's definition from a TOML file",
	Args:  cobra.ExactArgs(2),
	RunE:  runProblemUpdate,
}

var problemDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a saved problem",
	Args:  cobra.ExactArgs(1),
	RunE:  runProblemDelete,
}

var problemImportName string

func init() {
	problemImportCmd.Flags().StringVar(&problemImportName, "name", "", "library name (defaults to the file's name field)")
	problemCmd.AddCommand(problemListCmd, problemShowCmd, problemSolveCmd, problemImportCmd, problemUpdateCmd, problemDeleteCmd)
	rootCmd.AddCommand(problemCmd)
}

func runProblemList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(true); err != nil {
		return err
	}

	problems, err := problemService.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		cmd.Println("No saved problems.")
		return nil
	}

	for _, p := range problems {
		n, _ := p.Definition.VariableCount()
		sense, _ := p.Definition.Sense()
		cmd.Printf("  %s  %s (%s, %d variables, %d constraints)\n",
			p.ID, p.Name, sense, n, p.Definition.ConstraintCount())
	}
	return nil
}

func runProblemShow(cmd *cobra.Command, args []string) error {
	if err := ensureServices(true); err != nil {
		return err
	}

	p, err := problemService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	data, err := problemfile.Encode(p.Name, &p.Definition)
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}

func runProblemSolve(cmd *cobra.Command, args []string) error {
	if err := ensureServices(true); err != nil {
		return err
	}

	p, err := problemService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result, catalog, err := solverService.Solve(&p.Definition)
	if err != nil {
		return err
	}

	cmd.Printf("%s:\n", p.Name)
	opts := render.DefaultOptions()
	cmd.Print(render.Solution(result, catalog, opts))
	if result.Reason != domain.ReasonOptimal {
		cmd.Println()
		cmd.Println("Final tableau:")
		cmd.Print(render.Tableau(result.FinalTableau, catalog, opts))
	}
	return nil
}

func runProblemImport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(true); err != nil {
		return err
	}

	name, lp, err := problemfile.Load(args[0])
	if err != nil {
		return err
	}
	if problemImportName != "" {
		name = problemImportName
	}

	p, err := problemService.Save(cmd.Context(), name, lp)
	if err != nil {
		return err
	}
	cmd.Printf("Imported %q (%s)\n", p.Name, p.ID)
	return nil
}

func runProblemUpdate(cmd *cobra.Command, args []string) error {
	if err := ensureServices(true); err != nil {
		return err
	}

	_, lp, err := problemfile.Load(args[1])
	if err != nil {
		return err
	}

	p, err := problemService.Update(cmd.Context(), args[0], lp)
	if err != nil {
		return err
	}
	cmd.Printf("Updated %q (%s)\n", p.Name, p.ID)
	return nil
}

func runProblemDelete(cmd *cobra.Command, args []string) error {
	if err := ensureServices(true); err != nil {
		return err
	}

	if err := problemService.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted %q\n", args[0])
	return nil
}
