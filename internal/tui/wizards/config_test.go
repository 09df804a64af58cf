package wizards

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmptag/internal/config"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (ConfigWizard, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	w, ok := next.(ConfigWizard)
	require.True(t, ok, "expected ConfigWizard, got %T", next)
	return w, cmd
}

func press(t *testing.T, w ConfigWizard, keys ...string) (ConfigWizard, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		w, cmd = update(t, w, keyMsg(k))
	}
	return w, cmd
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestConfigWizard_StartsOnExifToolStep(t *testing.T) {
	w := NewConfigWizard(nil)

	assert.Equal(t, configStepExifTool, w.step)
	assert.Contains(t, w.View(), "ExifTool")
	assert.Nil(t, w.Init())
}

func TestConfigWizard_FullFlow(t *testing.T) {
	w := NewConfigWizard(nil)

	w, _ = press(t, w, "enter")
	require.Equal(t, configStepOutput, w.step)

	w, _ = press(t, w, "o", "u", "t")
	w, _ = press(t, w, "down", "down", "down", "8", "0")
	w, _ = press(t, w, "enter")
	require.Equal(t, configStepFormat, w.step)

	w, _ = press(t, w, "down", "enter")
	require.Equal(t, configStepMode, w.step)

	w, _ = press(t, w, "down", "enter")
	require.Equal(t, configStepReview, w.step)
	assert.Contains(t, w.View(), "jpeg_quality: 80")

	w, cmd := press(t, w, "enter")
	assert.True(t, isQuitCmd(cmd))
	assert.Equal(t, configStepDone, w.step)

	res := w.Result()
	assert.False(t, res.Cancelled)
	assert.Equal(t, "out", res.Config.Output.Directory)
	assert.Equal(t, 80, res.Config.Output.JPEGQuality)
	assert.Equal(t, "smart", res.Config.Output.Format)
	assert.Equal(t, "replace", res.Config.Write.Mode)
	assert.Empty(t, res.Config.ExifTool.Path)
}

func TestConfigWizard_InvalidQualityBlocksStep(t *testing.T) {
	w := NewConfigWizard(nil)
	w, _ = press(t, w, "enter", "down", "down", "down", "x")

	w, _ = press(t, w, "enter")

	assert.Equal(t, configStepOutput, w.step)
	assert.Contains(t, w.View(), "1 to 100")
}

func TestConfigWizard_EscOnFirstStepCancels(t *testing.T) {
	w := NewConfigWizard(nil)

	w, cmd := press(t, w, "esc")

	assert.True(t, isQuitCmd(cmd))
	assert.True(t, w.Result().Cancelled)
}

func TestConfigWizard_CtrlCCancelsAnywhere(t *testing.T) {
	w := NewConfigWizard(nil)
	w, _ = press(t, w, "enter", "enter")
	require.Equal(t, configStepFormat, w.step)

	w, cmd := press(t, w, "ctrl+c")

	assert.True(t, isQuitCmd(cmd))
	assert.True(t, w.Result().Cancelled)
}

func TestConfigWizard_BackNavigation(t *testing.T) {
	w := NewConfigWizard(nil)
	w, _ = press(t, w, "enter", "enter", "enter", "enter")
	require.Equal(t, configStepReview, w.step)

	w, _ = press(t, w, "esc")
	assert.Equal(t, configStepMode, w.step)

	w, _ = press(t, w, "esc")
	assert.Equal(t, configStepFormat, w.step)

	w, _ = press(t, w, "esc")
	assert.Equal(t, configStepOutput, w.step)

	w, _ = press(t, w, "esc")
	assert.Equal(t, configStepExifTool, w.step)
	assert.False(t, w.Result().Cancelled)
}

func TestConfigWizard_PrefillsExisting(t *testing.T) {
	existing := &config.ProjectConfig{
		ExifTool: config.ExifToolConfig{Path: "/opt/exiftool", Config: "ns.config"},
		Output:   config.OutputConfig{Directory: "tagged-out", JPEGQuality: 70, Format: "png"},
		Write:    config.WriteConfig{Mode: "delete", Namespace: "XMP-acme"},
		Fields:   map[string]string{"artist": "me"},
	}
	w := NewConfigWizard(existing)

	w, _ = press(t, w, "enter", "enter", "enter", "enter")
	require.Equal(t, configStepReview, w.step)
	w, _ = press(t, w, "enter")

	got := w.Result().Config
	assert.Equal(t, "/opt/exiftool", got.ExifTool.Path)
	assert.Equal(t, "ns.config", got.ExifTool.Config)
	assert.Equal(t, "tagged-out", got.Output.Directory)
	assert.Equal(t, 70, got.Output.JPEGQuality)
	assert.Equal(t, "png", got.Output.Format)
	assert.Equal(t, "delete", got.Write.Mode)
	assert.Equal(t, "XMP-acme", got.Write.Namespace)
	assert.Equal(t, map[string]string{"artist": "me"}, got.Fields)
}

func TestConfigWizard_ReviewShowsFileName(t *testing.T) {
	w := NewConfigWizard(nil)
	w, _ = press(t, w, "enter", "enter", "enter", "enter")

	view := w.View()
	assert.True(t, strings.Contains(view, config.ConfigFileName))
	assert.Contains(t, view, "format: preserve")
	assert.Contains(t, view, "mode: add")
}

func TestValidateQuality(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"1", false},
		{"100", false},
		{" 95 ", false},
		{"0", true},
		{"101", true},
		{"high", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateQuality(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
