package exiftool

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// OverwriteOriginal makes ExifTool edit in place without a _original backup.
const OverwriteOriginal = "-overwrite_original"

// Tool runs a located ExifTool binary.
type Tool struct {
	path       string
	configFile string
	runner     Runner
	logger     xmptag.Logger
}

// NewTool binds a Tool to the binary at path.
func NewTool(path string, runner Runner, logger xmptag.Logger) *Tool {
	return &Tool{path: path, runner: runner, logger: logger}
}

// WithConfigFile returns a copy that passes "-config file" on every call,
// which is how user-defined XMP namespaces are made writable.
func (t *Tool) WithConfigFile(file string) *Tool {
	clone := *t
	clone.configFile = file
	return &clone
}

// Path returns the binary path.
func (t *Tool) Path() string {
	return t.path
}

// Command returns the full argv (binary first) for args.
func (t *Tool) Command(args ...string) []string {
	argv := []string{t.path}
	if t.configFile != "" {
		argv = append(argv, "-config", t.configFile)
	}
	return append(argv, args...)
}

// Version returns the output of "exiftool -ver".
func (t *Tool) Version(ctx context.Context) (string, error) {
	res, err := t.run(ctx, "-ver")
	if err != nil {
		return "", err
	}
	return trimLine(res.Stdout), nil
}

// Exec runs ExifTool with args and fails on a non-zero exit.
func (t *Tool) Exec(ctx context.Context, args ...string) (Result, error) {
	return t.run(ctx, args...)
}

// Query reads tags from image and returns ExifTool's description-keyed
// output, e.g. {"Subject": "a, b", "Create Date": "2024:01:02 03:04:05"}.
func (t *Tool) Query(ctx context.Context, image string, tags ...string) (map[string]string, error) {
	args := make([]string, 0, len(tags)+1)
	for _, tag := range tags {
		args = append(args, "-"+tag)
	}
	args = append(args, image)

	res, err := t.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseOutput(res.Stdout), nil
}

// QueryXMP reads every XMP tag of image as group-qualified entries, in the
// order ExifTool prints them.
func (t *Tool) QueryXMP(ctx context.Context, image string) ([]Entry, error) {
	res, err := t.run(ctx, "-s", "-G1", "-XMP:all", image)
	if err != nil {
		return nil, err
	}
	return ParseGroupedOutput(res.Stdout), nil
}

func (t *Tool) run(ctx context.Context, args ...string) (Result, error) {
	argv := t.Command(args...)
	t.logger.Verbose("ExifTool command: %s", strings.Join(argv, " "))

	res, err := t.runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return res, fmt.Errorf("failed to run %s: %w", t.path, err)
	}

	t.logOutput(res)

	if res.ExitCode != 0 {
		return res, fmt.Errorf("%w (exit %d): %s", xmptag.ErrExifToolFailed, res.ExitCode, xmptag.Preview(res.Stderr))
	}
	return res, nil
}

// logOutput echoes stdout as cleaned "key: value" lines plus any stderr.
func (t *Tool) logOutput(res Result) {
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			t.logger.Verbose("  %s: %s", strings.TrimSpace(key), strings.TrimSpace(value))
		} else {
			t.logger.Verbose("  %s", strings.TrimSpace(line))
		}
	}
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		t.logger.Verbose("ExifTool stderr: %s", stderr)
	}
}
