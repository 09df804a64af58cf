package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmptag/internal/imaging"
	"github.com/vvka-141/xmptag/internal/services"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

var encodeFlags struct {
	metadata  string
	format    string
	nameFrom  string
	outputDir string
	carry     bool
	quality   int
	fields    fieldFlags
}

var encodeCmd = &cobra.Command{
	Use:   "encode <image>",
	Short: "Re-encode an image and inject metadata into the result",
	Long: `Decodes a PNG, JPEG or WebP image into pixels, encodes them again in the
chosen format and writes the metadata into the new file.

This is the path taken for images that only exist as pixels, such as the
output of a generation pipeline. The source image supplies the output file
name and, with --format preserve, the format. Use --name-from to take both
from another file, or --name-from "" to use a timestamped name.

Formats:
  preserve  Keep the name source's extension (PNG when unknown)
  smart     PNG for transparency and illustrations, JPEG for photos
  png       Always PNG
  jpg       Always JPEG

With --carry the XMP already present in the name source is re-applied to
the new file before the payload is injected.

Examples:
  # Re-save as a smart-format image with keywords
  xmptag encode render.png --format smart --metadata "cat, sunset"

  # Keep the original keywords and add one
  xmptag encode photo.jpg --carry --metadata "edited"`,
	Args:              RequireImagePath,
	ValidArgsFunction: completeImages,
	RunE:              runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeFlags.metadata, "metadata", "", "Tags or JSON payload to inject")
	encodeCmd.Flags().StringVar(&encodeFlags.format, "format", "", "Output format (preserve, smart, png, jpg; default from config or preserve)")
	encodeCmd.Flags().StringVar(&encodeFlags.nameFrom, "name-from", "", "File that supplies the output name and preserved format (default: the image)")
	encodeCmd.Flags().StringVarP(&encodeFlags.outputDir, "output-dir", "o", "", "Directory for the new image (default <source dir>/tagged)")
	encodeCmd.Flags().BoolVar(&encodeFlags.carry, "carry", false, "Re-apply the name source's XMP metadata")
	encodeCmd.Flags().IntVar(&encodeFlags.quality, "quality", 0, "JPEG quality 1-100 (default from config or 95)")
	addFieldFlags(encodeCmd, &encodeFlags.fields)

	_ = encodeCmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = encodeCmd.RegisterFlagCompletionFunc("output-dir", completeDirectories)
}

func runEncode(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	format := settings.Format
	if encodeFlags.format != "" {
		if format, err = xmptag.ParseFormatMode(encodeFlags.format); err != nil {
			return err
		}
	}

	quality := settings.JPEGQuality
	if cmd.Flags().Changed("quality") {
		quality = encodeFlags.quality
	}

	nameFrom := args[0]
	if cmd.Flags().Changed("name-from") {
		nameFrom = encodeFlags.nameFrom
	}

	outputDir := settings.OutputDir
	if cmd.Flags().Changed("output-dir") {
		outputDir = encodeFlags.outputDir
	}

	img, decoded, err := imaging.DecodeFile(args[0])
	if err != nil {
		return err
	}
	logger.Verbose("Decoded %s image %dx%d", decoded, img.Bounds().Dx(), img.Bounds().Dy())

	extra, err := resolveExtraFields(settings.Fields, encodeFlags.fields, logger)
	if err != nil {
		return err
	}

	svc := services.NewTensorWriteService(toolFactory(settings, logger), logger)
	output, err := svc.Write(cmd.Context(), xmptag.TensorWriteRequest{
		Tensor:         xmptag.TensorFromImage(img),
		Metadata:       encodeFlags.metadata,
		Format:         format,
		InputImagePath: nameFrom,
		OutputDir:      outputDir,
		FallbackRoot:   settings.FallbackRoot,
		Namespace:      resolveNamespace(settings, encodeFlags.fields),
		Quality:        quality,
		CarryMetadata:  encodeFlags.carry,
		Extra:          extra,
		DryRun:         encodeFlags.fields.dryRun,
	})
	if err != nil {
		if output != "" {
			logger.Error("Encoded image left at %s", output)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
