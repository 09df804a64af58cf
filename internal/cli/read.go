package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmptag/internal/services"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

var readFlags struct {
	field  string
	custom string
}

var readCmd = &cobra.Command{
	Use:   "read <image>",
	Short: "Print one XMP property of an image",
	Long: `Reads a single XMP property with ExifTool and prints its value.

When the property is absent the output is "No <Field> Found" and the exit
code is 0, so the result can be piped into other tools unconditionally.

Fields:
  subject      Keywords (XMP-dc:Subject)
  description  XMP-dc:Description
  create-date  XMP-xmp:CreateDate
  modify-date  XMP-xmp:ModifyDate
  custom       Any key named with --custom

Examples:
  # Print the keywords of an image
  xmptag read ./output/ComfyUI_00001_.png

  # Print a custom field written with --set
  xmptag read image.png --field custom --custom XMP-comfyui:seed`,
	Args:              RequireImagePath,
	ValidArgsFunction: completeImages,
	RunE:              runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().StringVar(&readFlags.field, "field", "subject", "Property to read (subject, description, create-date, modify-date, custom)")
	readCmd.Flags().StringVar(&readFlags.custom, "custom", "", "Key to read when --field is custom")
	_ = readCmd.RegisterFlagCompletionFunc("field", completeFields)
}

func runRead(cmd *cobra.Command, args []string) error {
	field, err := xmptag.ParseField(readFlags.field)
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	svc := services.NewReadService(toolFactory(settings, logger), logger)
	value, err := svc.Read(cmd.Context(), xmptag.ReadRequest{
		ImagePath: args[0],
		Field:     field,
		CustomKey: readFlags.custom,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
