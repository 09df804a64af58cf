package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// Environment variables read by Resolve.
const (
	EnvExifTool       = "XMPTAG_EXIFTOOL"
	EnvExifToolConfig = "XMPTAG_EXIFTOOL_CONFIG"
	EnvOutputDir      = "XMPTAG_OUTPUT_DIR"
	EnvNamespace      = "XMPTAG_NAMESPACE"
	EnvJPEGQuality    = "XMPTAG_JPEG_QUALITY"
)

// Settings is the resolved configuration shared by all commands.
type Settings struct {
	ExifToolPath   string
	ExifToolConfig string
	OutputDir      string
	FallbackRoot   string
	Namespace      string
	JPEGQuality    int
	Mode           xmptag.WriteMode
	Format         xmptag.FormatMode
	Fields         []xmptag.Pair
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Namespace:   xmptag.DefaultCustomNamespace,
		JPEGQuality: xmptag.DefaultJPEGQuality,
		Mode:        xmptag.ModeAdd,
		Format:      xmptag.FormatPreserve,
	}
}

// Resolve layers the environment over cfg over the defaults. cfg may be
// nil. getenv is usually os.Getenv. Command-line flags are applied by the
// caller on top of the result.
func Resolve(cfg *ProjectConfig, getenv func(string) string) (Settings, error) {
	s := Defaults()

	if cfg != nil {
		setIf(&s.ExifToolPath, cfg.ExifTool.Path)
		setIf(&s.ExifToolConfig, cfg.ExifTool.Config)
		setIf(&s.OutputDir, cfg.Output.Directory)
		setIf(&s.FallbackRoot, cfg.Output.FallbackRoot)
		setIf(&s.Namespace, cfg.Write.Namespace)
		if cfg.Output.JPEGQuality != 0 {
			s.JPEGQuality = cfg.Output.JPEGQuality
		}
		if cfg.Write.Mode != "" {
			mode, err := xmptag.ParseWriteMode(cfg.Write.Mode)
			if err != nil {
				return Settings{}, fmt.Errorf("%s write.mode: %w", ConfigFileName, err)
			}
			s.Mode = mode
		}
		if cfg.Output.Format != "" {
			format, err := xmptag.ParseFormatMode(cfg.Output.Format)
			if err != nil {
				return Settings{}, fmt.Errorf("%s output.format: %w", ConfigFileName, err)
			}
			s.Format = format
		}
		s.Fields = sortedFields(cfg.Fields)
	}

	if getenv != nil {
		setIf(&s.ExifToolPath, getenv(EnvExifTool))
		setIf(&s.ExifToolConfig, getenv(EnvExifToolConfig))
		setIf(&s.OutputDir, getenv(EnvOutputDir))
		setIf(&s.Namespace, getenv(EnvNamespace))
		if v := getenv(EnvJPEGQuality); v != "" {
			q, err := strconv.Atoi(v)
			if err != nil {
				return Settings{}, fmt.Errorf("%s=%q is not a number: %w", EnvJPEGQuality, v, xmptag.ErrInvalidConfig)
			}
			s.JPEGQuality = q
		}
	}

	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		return Settings{}, fmt.Errorf("jpeg quality %d outside 1-100: %w", s.JPEGQuality, xmptag.ErrInvalidConfig)
	}
	return s, nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func sortedFields(m map[string]string) []xmptag.Pair {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]xmptag.Pair, 0, len(keys))
	for _, k := range keys {
		out = append(out, xmptag.Pair{Key: k, Value: m[k]})
	}
	return out
}
