package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVersionInfo(t *testing.T) {
	origV, origC, origD := version, commit, date
	t.Cleanup(func() { version, commit, date = origV, origC, origD })

	t.Run("ldflags win", func(t *testing.T) {
		version, commit, date = "1.2.3", "abc123", "2026-01-02"
		v, c, d := resolveVersionInfo()
		assert.Equal(t, "1.2.3", v)
		assert.Equal(t, "abc123", c)
		assert.Equal(t, "2026-01-02", d)
	})

	t.Run("dev build falls back to build info", func(t *testing.T) {
		version, commit, date = "dev", "unknown", "unknown"
		v, c, d := resolveVersionInfo()
		assert.NotEmpty(t, v)
		assert.NotEmpty(t, c)
		assert.NotEmpty(t, d)
	})
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"read", "write", "encode", "locate", "config", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
