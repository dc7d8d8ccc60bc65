package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/avep-labs/avep/internal/config"
	averrors "github.com/avep-labs/avep/internal/errors"
	"github.com/avep-labs/avep/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create a configuration file",
		Long: `avep-verify needs no configuration file. A YAML file passed with --config
can override the expected packages, variables, skills and probe endpoints.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. YAML file (--config)
  3. Environment variables (AVEP_*)`,
		Example: `  # Write the defaults to a file for editing
  avep-verify config init avep.yaml

  # Show the effective configuration
  avep-verify config show --config avep.yaml`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, configPath, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file to merge over the defaults")

	return cmd
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	out := output.New(cmd.OutOrStdout())

	if _, err := os.Stat(path); err == nil && !force {
		out.Warning("Configuration file already exists")
		out.Statusf("📁", "Location: %s", path)
		out.Status("💡", "Use --force to overwrite it with the defaults")
		return nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return averrors.New(averrors.ErrCodeFilePermission,
			fmt.Sprintf("cannot access %s: %v", path, err), err)
	}

	if err := config.NewConfig().WriteYAML(path); err != nil {
		return averrors.New(averrors.ErrCodeFilePermission, err.Error(), err)
	}

	out.Success("Created configuration file")
	out.Statusf("📁", "Location: %s", path)
	out.Newline()
	out.Status("📋", "Next steps:")
	out.Status("", "  1. Edit the file to change expected packages or skills")
	out.Statusf("", "  2. Run 'avep-verify --config %s'", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, path string, jsonOutput bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return averrors.InternalError("failed to marshal config", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
