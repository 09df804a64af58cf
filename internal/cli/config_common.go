package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/xmptag/internal/config"
	"github.com/vvka-141/xmptag/internal/exiftool"
	"github.com/vvka-141/xmptag/internal/logging"
	"github.com/vvka-141/xmptag/internal/params"
	"github.com/vvka-141/xmptag/internal/services"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// newRunner creates the process runner used for ExifTool. Tests replace it.
var newRunner = func() exiftool.Runner {
	return exiftool.NewExecRunner()
}

// getenv is the environment lookup used by settings resolution. Tests replace it.
var getenv = os.Getenv

// fieldFlags holds the flags shared by the writing commands.
type fieldFlags struct {
	set        []string
	fieldsFile []string
	namespace  string
	dryRun     bool
}

func addFieldFlags(cmd *cobra.Command, f *fieldFlags) {
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "Extra field written to the custom namespace (key=value, repeatable)")
	cmd.Flags().StringArrayVar(&f.fieldsFile, "fields-file", nil, "Load extra fields from a .env-style file (repeatable)")
	cmd.Flags().StringVar(&f.namespace, "namespace", "", "XMP group for extra fields (default XMP-comfyui)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Print the planned output and ExifTool commands without writing")
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if xmptag.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// loadSettings resolves xmptag.yaml, the environment and the global flags.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	dir := getStringFlag(cmd, "config-dir")
	if dir == "" {
		dir = "."
	}

	projectCfg, err := loadProjectConfig(dir)
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := config.Resolve(projectCfg, getenv)
	if err != nil {
		return config.Settings{}, err
	}

	if path := getStringFlag(cmd, "exiftool"); path != "" {
		settings.ExifToolPath = path
	}
	return settings, nil
}

// newLogger returns the console logger for cmd.
func newLogger(cmd *cobra.Command) xmptag.Logger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// toolFactory locates ExifTool lazily, on the first operation that needs it.
func toolFactory(settings config.Settings, logger xmptag.Logger) services.ToolFactory {
	return func(ctx context.Context) (*exiftool.Tool, error) {
		return exiftool.NewLocator(newRunner(), logger, settings.ExifToolPath).Tool(ctx, settings.ExifToolConfig)
	}
}

// resolveExtraFields merges the extra fields of every source.
// Priority (highest to lowest): --set > --fields-file > xmptag.yaml
func resolveExtraFields(base []xmptag.Pair, flags fieldFlags, logger xmptag.Logger) ([]xmptag.Pair, error) {
	fields := append([]xmptag.Pair(nil), base...)

	for _, path := range flags.fieldsFile {
		logger.Verbose("Loading fields from file: %s", path)
		fileFields, err := params.LoadFieldsFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w\n\nTip: Verify the file format (KEY=VALUE)", err)
		}
		fields = params.Merge(fields, fileFields)
	}

	setFields, err := params.ParseKeyValuePairs(flags.set)
	if err != nil {
		return nil, fmt.Errorf("invalid --set value: %w", err)
	}
	if len(setFields) > 0 {
		logger.Verbose("--set overrides %d field(s)", len(setFields))
	}
	return params.Merge(fields, setFields), nil
}

// resolveNamespace prefers the flag over the resolved settings.
func resolveNamespace(settings config.Settings, flags fieldFlags) string {
	if flags.namespace != "" {
		return flags.namespace
	}
	return settings.Namespace
}
