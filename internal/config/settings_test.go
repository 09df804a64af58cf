package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve_Defaults(t *testing.T) {
	s, err := Resolve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Empty(t, s.OutputDir)
	assert.Equal(t, xmptag.DefaultCustomNamespace, s.Namespace)
	assert.Equal(t, 95, s.JPEGQuality)
}

func TestResolve_FileThenEnv(t *testing.T) {
	cfg := &ProjectConfig{
		ExifTool: ExifToolConfig{Path: "/yaml/exiftool", Config: "yaml.config"},
		Output:   OutputConfig{Directory: "/yaml/out", FallbackRoot: "/yaml/root", JPEGQuality: 80, Format: "smart"},
		Write:    WriteConfig{Mode: "Replace all", Namespace: "XMP-yaml"},
		Fields:   map[string]string{"b": "2", "a": "1"},
	}
	env := envMap(map[string]string{
		EnvExifTool:    "/env/exiftool",
		EnvNamespace:   "XMP-env",
		EnvJPEGQuality: "70",
	})

	s, err := Resolve(cfg, env)
	require.NoError(t, err)

	assert.Equal(t, "/env/exiftool", s.ExifToolPath)
	assert.Equal(t, "yaml.config", s.ExifToolConfig)
	assert.Equal(t, "/yaml/out", s.OutputDir)
	assert.Equal(t, "/yaml/root", s.FallbackRoot)
	assert.Equal(t, "XMP-env", s.Namespace)
	assert.Equal(t, 70, s.JPEGQuality)
	assert.Equal(t, xmptag.ModeReplace, s.Mode)
	assert.Equal(t, xmptag.FormatSmart, s.Format)
	assert.Equal(t, []xmptag.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, s.Fields)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *ProjectConfig
		env  map[string]string
	}{
		{"bad mode", &ProjectConfig{Write: WriteConfig{Mode: "merge"}}, nil},
		{"bad format", &ProjectConfig{Output: OutputConfig{Format: "gif"}}, nil},
		{"quality out of range", &ProjectConfig{Output: OutputConfig{JPEGQuality: 101}}, nil},
		{"env quality not a number", nil, map[string]string{EnvJPEGQuality: "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cfg, envMap(tt.env))
			assert.ErrorIs(t, err, xmptag.ErrInvalidConfig)
		})
	}
}
