package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = `
 __  ___ __ ___  _ __ | |_ __ _  __ _
 \ \/ / '_ ` + "`" + ` _ \| '_ \| __/ _` + "`" + ` |/ _` + "`" + ` |
  >  <| | | | | | |_) | || (_| | (_| |
 /_/\_\_| |_| |_| .__/ \__\__,_|\__, |
                |_|             |___/`

var rootCmd = &cobra.Command{
	Use:   "xmptag",
	Short: "Read and write XMP image metadata through ExifTool",
	Long: banner + `

xmptag reads XMP properties from images and writes keywords, descriptions
and custom fields into tagged copies, leaving the originals untouched.
Images are never re-encoded by write; encode re-saves pixels and injects
metadata into the new file.

All metadata work is delegated to ExifTool, which must be installed on
PATH, bundled next to the xmptag binary, or named with --exiftool.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or request
  11 - ExifTool not found
  12 - Input image not found
  13 - ExifTool failed
  14 - Input already in a tagged directory
  15 - Image encode failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for xmptag")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config-dir", ".", "Directory containing xmptag.yaml")
	rootCmd.PersistentFlags().String("exiftool", "", "Path to the ExifTool binary (overrides XMPTAG_EXIFTOOL)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// getStringFlag returns a string flag value, or "" when it is not defined.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}
