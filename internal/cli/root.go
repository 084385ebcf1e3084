// Package cli implements the fieldcarbon command tree.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/fieldcarbon/internal/config"
	"github.com/rshade/fieldcarbon/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isWriterTerminal reports whether w is a terminal. Buffers in tests are not.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// NewRootCmd creates the root command and wires configuration, logging
// and the estimate, reference, geo and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "fieldcarbon",
		Short:         "Greenhouse-gas estimates for agricultural field records",
		Long:          "fieldcarbon computes per-source CO2e emissions for field-season analyses using IPCC Tier 1 coefficients.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			if loadErr := config.GetGlobalConfig().LoadError(); loadErr != nil {
				logger.Warn().
					Ctx(cmd.Context()).
					Err(loadErr).
					Msg("config file could not be parsed, using defaults")
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $FIELDCARBON_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .fieldcarbon/config.yaml")
	cmd.AddCommand(NewEstimateCmd(), newReferenceCmd(), newGeoCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Estimate emissions for every analysis in a file
  fieldcarbon estimate fields.yaml

  # Same, as JSON
  fieldcarbon estimate fields.yaml --output json

  # Show the crop table of the reference catalog
  fieldcarbon reference list crops

  # List geo locations
  fieldcarbon geo list

  # Write a default configuration file
  fieldcarbon config init`

// loadConfig resolves the configuration for this invocation and installs
// it as the global config: --config or the home config, then the project
// overlay.
func loadConfig(cmd *cobra.Command) error {
	var cfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		loaded.ApplyEnv(os.LookupEnv)
		cfg = loaded
	} else {
		cfg = config.New()
	}

	flagDir, _ := cmd.Flags().GetString("project-dir")
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	projectDir := config.ResolveProjectDir(cmd.Context(), flagDir, cwd)
	cfg = config.NewWithProjectDir(cmd.Context(), cfg, projectDir)

	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// newReferenceCmd creates the reference command group.
func newReferenceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "reference", Short: "Inspect the reference coefficient catalog"}
	cmd.AddCommand(NewReferenceListCmd(), NewReferenceShowCmd(), NewReferenceVersionCmd())
	return cmd
}

// newGeoCmd creates the geo command group.
func newGeoCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "geo", Short: "Inspect geo location coefficients"}
	cmd.AddCommand(NewGeoListCmd(), NewGeoShowCmd())
	return cmd
}

// exitCodeData is returned for unreadable or invalid input documents.
const exitCodeData = 2

// exitError carries a process exit code for main.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// dataError marks err as a problem with the user's input data.
func dataError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitCodeData, err: err}
}

// ExitCode maps an error returned by the root command to a process exit
// code: 0 for nil, 2 for invalid input data, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
