package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avep-labs/avep/internal/config"
	averrors "github.com/avep-labs/avep/internal/errors"
	"github.com/avep-labs/avep/internal/logging"
	"github.com/avep-labs/avep/internal/preflight"
	"github.com/avep-labs/avep/internal/ui"
)

type verifyOptions struct {
	jsonOutput bool
	verbose    bool
	noColor    bool
	configPath string
	envFile    string
}

// checksFailedError signals that the report was printed and at least one
// check failed.
type checksFailedError struct {
	errors int
}

func (e *checksFailedError) Error() string {
	return fmt.Sprintf("verification failed with %d error(s)", e.errors)
}

func runVerify(cmd *cobra.Command, opts verifyOptions, extra []preflight.Option) error {
	// Cancel in-flight probes on interrupt.
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return reportSetupError(cmd, opts, err)
	}

	lookup := preflight.LookupFunc(os.LookupEnv)
	if opts.envFile != "" {
		values, err := config.LoadEnvFile(opts.envFile)
		if err != nil {
			return reportSetupError(cmd, opts, err)
		}
		lookup = preflight.LookupWithFallback(lookup, values)
	}

	logger := slog.Default()
	if !debugMode {
		logger = logging.NewConsoleLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.jsonOutput {
		out = io.Discard
	}
	useColor := !opts.jsonOutput && ui.UseColor(cmd.OutOrStdout(), opts.noColor)

	checkerOpts := []preflight.Option{
		preflight.WithConfig(cfg),
		preflight.WithOutput(out),
		preflight.WithStyles(ui.GetStyles(!useColor)),
		preflight.WithVerbose(opts.verbose),
		preflight.WithLookupEnv(lookup),
		preflight.WithLogger(logger),
	}
	checker := preflight.New(append(checkerOpts, extra...)...)

	summary := checker.Run(ctx)
	logger.Debug("verification finished",
		slog.String("status", summary.Status()),
		slog.Int("errors", summary.Errors),
		slog.Int("warnings", summary.Warnings))

	if opts.jsonOutput {
		if err := outputJSON(cmd, summary); err != nil {
			return err
		}
	}

	if summary.ExitCode() != 0 {
		return &checksFailedError{errors: summary.Errors}
	}
	return nil
}

// reportSetupError writes err to stdout as JSON when a JSON report was
// requested, so consumers always receive a document. The error is returned
// for the usual stderr message and exit code.
func reportSetupError(cmd *cobra.Command, opts verifyOptions, err error) error {
	if !opts.jsonOutput {
		return err
	}
	data, jerr := averrors.FormatJSON(err)
	if jerr == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return err
}

func outputJSON(cmd *cobra.Command, summary preflight.Summary) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary.JSON())
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
