package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/xmptag/internal/exiftool"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// ToolFactory returns a ready ExifTool.
type ToolFactory func(ctx context.Context) (*exiftool.Tool, error)

// runInvocations executes each argument list against target with
// -overwrite_original. Empty lists are skipped.
func runInvocations(ctx context.Context, tool *exiftool.Tool, target string, invocations [][]string) error {
	for _, args := range invocations {
		if len(args) == 0 {
			continue
		}
		if _, err := tool.Exec(ctx, writeArgs(args, target)...); err != nil {
			return err
		}
	}
	return nil
}

func writeArgs(args []string, target string) []string {
	out := make([]string, 0, len(args)+2)
	out = append(out, args...)
	return append(out, exiftool.OverwriteOriginal, target)
}

// logDryRun prints the commands a write would run.
func logDryRun(logger xmptag.Logger, tool *exiftool.Tool, target string, invocations [][]string) {
	id := uuid.NewString()
	logger.Info("Dry run %s: would write %s", id, target)
	for _, args := range invocations {
		if len(args) == 0 {
			continue
		}
		logger.Info("Dry run %s: %s", id, strings.Join(tool.Command(writeArgs(args, target)...), " "))
	}
}
