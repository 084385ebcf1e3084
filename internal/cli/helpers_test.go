package cli_test

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/rshade/fieldcarbon/internal/cli"
	"github.com/rshade/fieldcarbon/internal/config"
)

//nolint:gochecknoglobals // Shared fixtures path.
var (
	yamlFixture = filepath.Join("..", "ingest", "testdata", "analyses.yaml")
	jsonFixture = filepath.Join("..", "ingest", "testdata", "analyses.json")
)

// setupCLITest isolates the command from the user's home and project
// configuration and resets global state afterwards.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FIELDCARBON_HOME", home)
	t.Setenv("FIELDCARBON_LOG_LEVEL", "error")
	t.Setenv("FIELDCARBON_PROJECT_DIR", "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
