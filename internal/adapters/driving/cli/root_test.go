package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "simplexa", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("data-dir"))
}

func TestEnsureServices_KeepsInjectedServices(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	injected := solverService
	require.NoError(t, ensureServices(false))

	// ensureServices only fills nil slots.
	assert.Same(t, injected, solverService)
	assert.Nil(t, libraryStore)
}
