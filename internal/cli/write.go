package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmptag/internal/services"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

var writeFlags struct {
	metadata    string
	kind        string
	mode        string
	customField string
	outputDir   string
	fields      fieldFlags
}

var writeCmd = &cobra.Command{
	Use:   "write <image>",
	Short: "Write metadata into a tagged copy of an image",
	Long: `Copies the image byte for byte and writes metadata into the copy with
ExifTool. The original file is never modified and timestamps are carried
over to the copy.

The copy goes to <image dir>/tagged unless --output-dir names another
directory. Images already inside a tagged directory are refused unless an
explicit output directory is given.

Metadata may be comma separated tags, a JSON array of tags, or a JSON
object with a "tags" entry. Other scalar entries of a JSON object are
written to the custom namespace, as are --set and --fields-file values.

Examples:
  # Add keywords
  xmptag write image.png --metadata "portrait, studio"

  # Replace keywords and record generation parameters
  xmptag write image.png --mode replace \
    --metadata '{"tags": ["cat", "sunset"], "seed": 42}'

  # Show the planned ExifTool commands without writing
  xmptag write image.png --metadata "cat" --dry-run -v`,
	Args:              RequireImagePath,
	ValidArgsFunction: completeImages,
	RunE:              runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVar(&writeFlags.metadata, "metadata", "", "Tags, description text or JSON payload")
	writeCmd.Flags().StringVar(&writeFlags.kind, "type", "subject", "Target property (subject, description, custom)")
	writeCmd.Flags().StringVar(&writeFlags.mode, "mode", "", "Write mode (add, replace, delete; default from config or add)")
	writeCmd.Flags().StringVar(&writeFlags.customField, "custom-field", "", "XMP tag written when --type is custom")
	writeCmd.Flags().StringVarP(&writeFlags.outputDir, "output-dir", "o", "", "Directory for the tagged copy (default <image dir>/tagged)")
	addFieldFlags(writeCmd, &writeFlags.fields)

	_ = writeCmd.RegisterFlagCompletionFunc("type", completeKinds)
	_ = writeCmd.RegisterFlagCompletionFunc("mode", completeModes)
	_ = writeCmd.RegisterFlagCompletionFunc("output-dir", completeDirectories)
}

func runWrite(cmd *cobra.Command, args []string) error {
	kind, err := xmptag.ParseMetadataKind(writeFlags.kind)
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	mode := settings.Mode
	if writeFlags.mode != "" {
		if mode, err = xmptag.ParseWriteMode(writeFlags.mode); err != nil {
			return err
		}
	}

	outputDir := settings.OutputDir
	if cmd.Flags().Changed("output-dir") {
		outputDir = writeFlags.outputDir
	}

	extra, err := resolveExtraFields(settings.Fields, writeFlags.fields, logger)
	if err != nil {
		return err
	}

	svc := services.NewFileWriteService(toolFactory(settings, logger), logger)
	output, err := svc.Write(cmd.Context(), xmptag.FileWriteRequest{
		InputPath:   args[0],
		Metadata:    writeFlags.metadata,
		Kind:        kind,
		Mode:        mode,
		CustomField: writeFlags.customField,
		OutputDir:   outputDir,
		Namespace:   resolveNamespace(settings, writeFlags.fields),
		Extra:       extra,
		DryRun:      writeFlags.fields.dryRun,
	})
	if err != nil {
		if output != "" {
			logger.Error("Tagged copy left at %s", output)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
