package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmptag/internal/config"
	"github.com/vvka-141/xmptag/internal/tui"
	"github.com/vvka-141/xmptag/internal/tui/wizards"
)

var configCmd = &cobra.Command{
	Use:   "config [dir]",
	Short: "Interactively create or edit xmptag.yaml configuration",
	Long: `Launches an interactive wizard to create or edit xmptag.yaml.

The wizard guides you through:
  1. ExifTool binary and config file for custom namespaces
  2. Output directory, fallback root, namespace and JPEG quality
  3. Default output format for encode
  4. Default write mode for write

This command requires an interactive terminal. For non-interactive use,
create xmptag.yaml manually or use XMPTAG_* environment variables.

Examples:
  # Create config in current directory
  xmptag config

  # Create config in a specific directory
  xmptag config ./workflows`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	// Require interactive terminal
	if !tui.IsInteractive() {
		return fmt.Errorf("config command requires an interactive terminal\n" +
			"For non-interactive use, create xmptag.yaml manually or use environment variables")
	}

	existingCfg, err := config.Load(targetDir)
	if err == nil && existingCfg != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Found existing %s\n", config.ConfigFileName)
		if !tui.PromptContinue("Overwrite existing configuration?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	result, err := wizards.RunConfigWizard(existingCfg)
	if err != nil {
		return fmt.Errorf("config wizard failed: %w", err)
	}
	if result.Cancelled {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	path, err := config.Save(targetDir, &result.Config)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s Configuration saved to %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), path)
	return nil
}
