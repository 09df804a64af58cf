package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireImagePath validates that exactly one image argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireImagePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <image>

Usage: %s

Example:
  %s ./output/ComfyUI_00001_.png`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
