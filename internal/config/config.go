package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ExifToolConfig struct {
	Path   string `yaml:"path,omitempty"`
	Config string `yaml:"config,omitempty"`
}

type OutputConfig struct {
	Directory    string `yaml:"directory,omitempty"`
	FallbackRoot string `yaml:"fallback_root,omitempty"`
	JPEGQuality  int    `yaml:"jpeg_quality,omitempty"`
	Format       string `yaml:"format,omitempty"`
}

type WriteConfig struct {
	Mode      string `yaml:"mode,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
}

type ProjectConfig struct {
	ExifTool ExifToolConfig    `yaml:"exiftool"`
	Output   OutputConfig      `yaml:"output"`
	Write    WriteConfig       `yaml:"write"`
	Fields   map[string]string `yaml:"fields,omitempty"`
}

const ConfigFileName = "xmptag.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return &cfg, nil
}

// Save writes cfg to dir/xmptag.yaml.
func Save(dir string, cfg *ProjectConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
