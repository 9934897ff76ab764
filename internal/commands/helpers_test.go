package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/commands"
	"github.com/cleared-dev/ledger/internal/config"
)

// testdata resolves a fixture path. Call it before isolate changes the
// working directory.
func testdata(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return path
}

// isolate moves the test into an empty directory and clears ledger
// environment variables so no outside config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(config.EnvLedgerFile, "")
	t.Setenv(config.EnvConfigFile, "")
	return dir
}

// setup isolates the test and copies the example ledger into its directory.
func setup(t *testing.T) (dir, ledger string) {
	t.Helper()
	data, err := os.ReadFile(testdata(t, "example.yaml"))
	require.NoError(t, err)

	dir = isolate(t)
	ledger = filepath.Join(dir, "ledger.yaml")
	require.NoError(t, os.WriteFile(ledger, data, 0o644))
	return dir, ledger
}

// runLedger executes the CLI in-process and returns stdout and stderr.
func runLedger(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
