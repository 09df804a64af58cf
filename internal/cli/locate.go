package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmptag/internal/exiftool"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show which ExifTool binary xmptag will use",
	Long: `Resolves the ExifTool binary the other commands would run and prints its
path and version.

Search order:
  1. --exiftool, XMPTAG_EXIFTOOL or exiftool.path in xmptag.yaml
  2. exiftool on PATH
  3. exiftool/exiftool next to the xmptag executable`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	tool, err := exiftool.NewLocator(newRunner(), logger, settings.ExifToolPath).Tool(cmd.Context(), settings.ExifToolConfig)
	if err != nil {
		return err
	}

	version, err := tool.Version(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tool.Path(), version)
	if settings.ExifToolConfig != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Config file: %s\n", settings.ExifToolConfig)
	}
	return nil
}
