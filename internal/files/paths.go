package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// NormalizeInputPath trims whitespace and strips one pair of surrounding
// double quotes, as left by "copy as path" on Windows.
func NormalizeInputPath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
		p = p[1 : len(p)-1]
	}
	return p
}

// InTaggedDir reports whether any directory component of path's absolute
// parent is named "tagged", ignoring case.
func InTaggedDir(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Dir(abs)), "/") {
		if strings.EqualFold(part, xmptag.TaggedDirName) {
			return true
		}
	}
	return false
}

// IsDefaultOutputDir reports whether dir asks a file write for the derived
// location: empty, or exactly xmptag.DefaultOutputDirectory. Any other
// spelling, including "tagged", is an explicit directory.
func IsDefaultOutputDir(dir string) bool {
	dir = strings.TrimSpace(dir)
	return dir == "" || dir == xmptag.DefaultOutputDirectory
}

// FileOutputPath returns where a copy of input is written: outputDir, or
// <input dir>/tagged for the default, keeping input's base name.
func FileOutputPath(input, outputDir string) (string, error) {
	dir, err := resolveOutputDir(outputDir, IsDefaultOutputDir(outputDir), input, "")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(input)), nil
}

// TensorOutputPath returns where an encoded tensor is written. The file is
// named after inputPath's stem, or tagged_image_<timestamp> without one,
// and carries ext. The directory is outputDir, else <input dir>/tagged,
// else <fallbackRoot>/tagged.
func TensorOutputPath(outputDir, ext, inputPath, fallbackRoot string, now time.Time) (string, error) {
	name := xmptag.FallbackNamePrefix + now.Format(xmptag.FallbackNameLayout)
	if inputPath != "" {
		base := filepath.Base(inputPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	dir, err := resolveOutputDir(outputDir, strings.TrimSpace(outputDir) == "", inputPath, fallbackRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+ext), nil
}

func resolveOutputDir(outputDir string, derive bool, inputPath, fallbackRoot string) (string, error) {
	if !derive {
		return strings.TrimRight(strings.TrimSpace(outputDir), `/\`), nil
	}

	root := fallbackRoot
	if inputPath != "" {
		abs, err := filepath.Abs(inputPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", inputPath, err)
		}
		root = filepath.Dir(abs)
	}
	return filepath.Join(root, xmptag.TaggedDirName), nil
}

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// RequireFile returns an error wrapping xmptag.ErrInputNotFound unless path
// names an existing regular file.
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, xmptag.ErrInputNotFound)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, xmptag.ErrInputNotFound)
	}
	return nil
}
