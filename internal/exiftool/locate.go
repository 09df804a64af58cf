package exiftool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// DefaultBinary is the command name looked up on PATH.
const DefaultBinary = "exiftool"

// Locator finds a usable ExifTool binary.
type Locator struct {
	// Explicit, when set, is the only candidate considered.
	Explicit string

	// SearchDirs are checked for bundled copies after PATH. Defaults to the
	// directory of the running executable.
	SearchDirs []string

	runner Runner
	logger xmptag.Logger
}

// NewLocator creates a Locator that probes candidates with runner.
func NewLocator(runner Runner, logger xmptag.Logger, explicit string) *Locator {
	return &Locator{
		Explicit:   explicit,
		SearchDirs: executableDirs(),
		runner:     runner,
		logger:     logger,
	}
}

// Locate returns the path of a usable ExifTool, or an error wrapping
// xmptag.ErrExifToolNotFound.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	if l.Explicit != "" {
		if _, err := os.Stat(l.Explicit); err != nil {
			return "", fmt.Errorf("configured exiftool %q: %w", l.Explicit, xmptag.ErrExifToolNotFound)
		}
		l.logger.Verbose("Using configured exiftool: %s", l.Explicit)
		return l.Explicit, nil
	}

	res, err := l.runner.Run(ctx, DefaultBinary, "-ver")
	if err == nil && res.ExitCode == 0 {
		l.logger.Verbose("Found exiftool %s on PATH", trimLine(res.Stdout))
		return DefaultBinary, nil
	}

	for _, candidate := range bundledCandidates(l.SearchDirs) {
		if _, err := os.Stat(candidate); err == nil {
			abs, absErr := filepath.Abs(candidate)
			if absErr != nil {
				abs = candidate
			}
			l.logger.Verbose("Using bundled exiftool: %s", abs)
			return abs, nil
		}
	}

	return "", fmt.Errorf("install ExifTool or set XMPTAG_EXIFTOOL: %w", xmptag.ErrExifToolNotFound)
}

// Tool locates ExifTool and returns a Tool bound to it.
func (l *Locator) Tool(ctx context.Context, configFile string) (*Tool, error) {
	path, err := l.Locate(ctx)
	if err != nil {
		return nil, err
	}
	return NewTool(path, l.runner, l.logger).WithConfigFile(configFile), nil
}

func bundledCandidates(dirs []string) []string {
	name := DefaultBinary
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	var out []string
	for _, dir := range dirs {
		out = append(out,
			filepath.Join(dir, "exiftool", name),
			filepath.Join(dir, name),
		)
	}
	return out
}

func executableDirs() []string {
	exe, err := os.Executable()
	if err != nil {
		return nil
	}
	return []string{filepath.Dir(exe)}
}
