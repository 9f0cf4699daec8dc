package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	configfile "github.com/solvio-labs/simplexa/internal/adapters/driven/config/file"
	"github.com/solvio-labs/simplexa/internal/adapters/driven/storage/memory"
	"github.com/solvio-labs/simplexa/internal/core/services"
)

// setupTestServices injects in-memory services into the command package so
// commands never touch the real data directory. The returned cleanup
// restores the zero state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	solverService = services.NewSolverService()
	problemService = services.NewProblemService(memory.NewProblemStore())

	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store
	settingsService = services.NewSettingsService(store)

	return func() {
		solverService = nil
		problemService = nil
		settingsService = nil
		configStore = nil
		solveJSON = false
		solveTableau = false
		solveWatch = false
		solveDryRun = false
		solveSaveName = ""
		problemImportName = ""
	}
}

const fixtureDoc = `
name = "production-mix"
sense = "maximize"
variables = 2
objective = [3.0, 2.0]

[[constraint]]
coefficients = [1.0, 1.0]
relation = "<="
rhs = 4.0

[[constraint]]
coefficients = [1.0, 3.0]
relation = "<="
rhs = 6.0
`

// writeFixture writes a solvable problem file and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDoc), 0o600))
	return path
}
