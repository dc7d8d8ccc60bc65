// Package cmd provides the CLI commands for avep-verify.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	averrors "github.com/avep-labs/avep/internal/errors"
	"github.com/avep-labs/avep/internal/logging"
	"github.com/avep-labs/avep/internal/preflight"
	"github.com/avep-labs/avep/pkg/version"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// Debug logging flag
var (
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the avep-verify CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd()
}

// newRootCmd builds the root command; checkerOpts are applied after the
// options derived from flags and configuration.
func newRootCmd(checkerOpts ...preflight.Option) *cobra.Command {
	var opts verifyOptions

	cmd := &cobra.Command{
		Use:   "avep-verify",
		Short: "Check that this machine is ready to run the AVEP toolkit",
		Long: `avep-verify runs a pre-flight check of everything the AVEP skills rely on.

Checks, in order:
  - Node.js version (18 or newer)
  - npm packages: ethers, zksync-ethers, ts-node, dotenv
  - zkSync Era testnet reachability
  - USER_PRIVATE_KEY and RPC_URL (optional)
  - Skills installed under ~/.agent/skills

Exit status is 0 when no errors were found (warnings are allowed),
1 when at least one check failed, and 2 for invalid flags or configuration.`,
		Example: `  # Run every check
  avep-verify

  # Show error codes and probe details
  avep-verify --verbose

  # Machine-readable report for CI
  avep-verify --json`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, opts, checkerOpts)
		},
	}

	cmd.SetVersionTemplate("avep-verify version {{.Version}}\n")

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show error codes and probe details")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Read settings from a YAML file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Read variables missing from the environment from a dotenv file")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.avep/logs/")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// startLogging enables debug logging to file when --debug is set.
func startLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}

	logger, cleanup, err := logging.Setup(logging.DebugConfig())
	if err != nil {
		return averrors.New(averrors.ErrCodeFilePermission,
			fmt.Sprintf("failed to setup debug logging: %v", err), err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("Debug logging enabled",
		slog.String("log_file", logging.DefaultLogPath()),
		slog.String("version", version.Version))
	return nil
}

// stopLogging flushes and closes the debug log.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		slog.Info("Debug logging stopped")
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd())
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	// PersistentPostRunE is skipped when RunE fails.
	_ = stopLogging(cmd, nil)
	return exitCode(cmd.ErrOrStderr(), err)
}

// exitCode maps a command error to an exit status, printing anything the
// command has not already reported.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	var failed *checksFailedError
	if errors.As(err, &failed) {
		return ExitFailed
	}

	var ve *averrors.VerifyError
	if !errors.As(err, &ve) {
		ve = averrors.Wrap(averrors.ErrCodeInvalidInput, err).
			WithSuggestion("Run 'avep-verify --help' for usage")
	}
	if debugMode {
		_, _ = fmt.Fprintln(w, averrors.FormatForUser(ve, true))
	} else {
		_, _ = fmt.Fprint(w, averrors.FormatForCLI(ve))
	}
	return ExitUsage
}
