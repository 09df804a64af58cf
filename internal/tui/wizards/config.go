package wizards

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/xmptag/internal/config"
	"github.com/vvka-141/xmptag/internal/tui"
	"github.com/vvka-141/xmptag/internal/tui/components"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// ConfigResult holds the result of the config wizard.
type ConfigResult struct {
	Cancelled bool
	Config    config.ProjectConfig
}

// ConfigWizard guides users through creating xmptag.yaml.
type ConfigWizard struct {
	step configStep

	exiftoolFields []components.TextField
	outputFields   []components.TextField
	focus          int

	format components.Selector
	mode   components.Selector

	fields map[string]string
	result ConfigResult
	keys   tui.KeyMap
}

type configStep int

const (
	configStepExifTool configStep = iota
	configStepOutput
	configStepFormat
	configStepMode
	configStepReview
	configStepDone
)

// Field indexes within each input step.
const (
	fieldExifToolPath = iota
	fieldExifToolConfig
)

const (
	fieldOutputDir = iota
	fieldFallbackRoot
	fieldNamespace
	fieldQuality
)

var formatOptions = []components.Option{
	{Label: xmptag.FormatPreserve.String(), Value: "preserve", Description: "Keep the source image's extension"},
	{Label: xmptag.FormatSmart.String(), Value: "smart", Description: "PNG for alpha and illustrations, JPEG for photos"},
	{Label: xmptag.FormatPNG.String(), Value: "png"},
	{Label: xmptag.FormatJPG.String(), Value: "jpg"},
}

var modeOptions = []components.Option{
	{Label: xmptag.ModeAdd.String(), Value: "add", Description: "Keep existing keywords"},
	{Label: xmptag.ModeReplace.String(), Value: "replace", Description: "Clear keywords before writing"},
	{Label: xmptag.ModeDelete.String(), Value: "delete", Description: "Remove the given keywords"},
}

// NewConfigWizard creates a config wizard prefilled from existing, which
// may be nil.
func NewConfigWizard(existing *config.ProjectConfig) ConfigWizard {
	var cfg config.ProjectConfig
	if existing != nil {
		cfg = *existing
	}

	quality := ""
	if cfg.Output.JPEGQuality != 0 {
		quality = strconv.Itoa(cfg.Output.JPEGQuality)
	}

	w := ConfigWizard{
		step: configStepExifTool,
		exiftoolFields: []components.TextField{
			components.NewTextField("ExifTool binary (empty: search PATH)", "exiftool").
				WithValue(cfg.ExifTool.Path).
				WithCompleter(components.NewPathCompleter(nil)),
			components.NewTextField("ExifTool config file for custom namespaces", "comfyui.config").
				WithValue(cfg.ExifTool.Config).
				WithCompleter(components.NewPathCompleter(nil)),
		},
		outputFields: []components.TextField{
			components.NewTextField("Output directory", xmptag.DefaultOutputDirectory).
				WithValue(cfg.Output.Directory).
				WithCompleter(components.NewPathCompleter(components.DirsOnly)),
			components.NewTextField("Fallback root for unnamed images", "./output").
				WithValue(cfg.Output.FallbackRoot).
				WithCompleter(components.NewPathCompleter(components.DirsOnly)),
			components.NewTextField("Custom namespace", xmptag.DefaultCustomNamespace).
				WithValue(cfg.Write.Namespace),
			components.NewTextField("JPEG quality", strconv.Itoa(xmptag.DefaultJPEGQuality)).
				WithValue(quality).
				WithValidator(validateQuality),
		},
		format: components.NewSelector("Default output format", formatOptions).WithShowHelp(false),
		mode:   components.NewSelector("Default write mode", modeOptions).WithShowHelp(false),
		fields: cfg.Fields,
		keys:   tui.DefaultKeyMap(),
	}
	if cfg.Output.Format != "" {
		if f, err := xmptag.ParseFormatMode(cfg.Output.Format); err == nil {
			w.format = w.format.WithCursor(formatOptions[f].Value)
		}
	}
	if cfg.Write.Mode != "" {
		if m, err := xmptag.ParseWriteMode(cfg.Write.Mode); err == nil {
			w.mode = w.mode.WithCursor(modeOptions[m].Value)
		}
	}
	w.exiftoolFields[0].Focus()
	return w
}

func validateQuality(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	q, err := strconv.Atoi(v)
	if err != nil || q < 1 || q > 100 {
		return fmt.Errorf("enter a number from 1 to 100")
	}
	return nil
}

// Init implements tea.Model.
func (w ConfigWizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w ConfigWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	if key.Matches(keyMsg, w.keys.Quit) {
		w.result.Cancelled = true
		return w, tea.Quit
	}

	switch w.step {
	case configStepExifTool:
		return w.updateInputs(keyMsg, w.exiftoolFields, configStepOutput)
	case configStepOutput:
		return w.updateInputs(keyMsg, w.outputFields, configStepFormat)
	case configStepFormat:
		return w.updateSelector(keyMsg, &w.format, configStepOutput, configStepMode)
	case configStepMode:
		return w.updateSelector(keyMsg, &w.mode, configStepFormat, configStepReview)
	case configStepReview:
		return w.updateReview(keyMsg)
	}
	return w, nil
}

// updateInputs drives a step made of text fields. fields aliases the
// wizard's slice for the current step.
func (w ConfigWizard) updateInputs(msg tea.KeyMsg, fields []components.TextField, next configStep) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Down):
		return w, w.moveFocus(fields, 1)
	case key.Matches(msg, w.keys.Up):
		return w, w.moveFocus(fields, -1)
	case key.Matches(msg, w.keys.Select):
		for _, f := range fields {
			if f.Error() != nil {
				return w, nil
			}
		}
		fields[w.focus].Blur()
		w.step = next
		w.focus = 0
		if next == configStepOutput {
			return w, w.outputFields[0].Focus()
		}
		return w, nil
	case key.Matches(msg, w.keys.Back):
		fields[w.focus].Blur()
		if w.step == configStepExifTool {
			w.result.Cancelled = true
			return w, tea.Quit
		}
		w.step = configStepExifTool
		w.focus = 0
		return w, w.exiftoolFields[0].Focus()
	}

	var cmd tea.Cmd
	fields[w.focus], cmd = fields[w.focus].Update(msg)
	return w, cmd
}

func (w *ConfigWizard) moveFocus(fields []components.TextField, delta int) tea.Cmd {
	next := w.focus + delta
	if next < 0 || next >= len(fields) {
		return nil
	}
	fields[w.focus].Blur()
	w.focus = next
	return fields[w.focus].Focus()
}

func (w ConfigWizard) updateSelector(msg tea.KeyMsg, sel *components.Selector, prev, next configStep) (tea.Model, tea.Cmd) {
	m, _ := sel.Update(msg)
	updated := m.(components.Selector)

	switch {
	case updated.Submitted():
		*sel = components.NewSelector(selectorTitle(w.step), optionsFor(w.step)).
			WithShowHelp(false).
			WithCursor(updated.Value())
		w.step = next
	case updated.Cancelled():
		*sel = components.NewSelector(selectorTitle(w.step), optionsFor(w.step)).
			WithShowHelp(false).
			WithCursor(optionsFor(w.step)[updated.Cursor()].Value)
		w.step = prev
		if prev == configStepOutput {
			w.focus = 0
			return w, w.outputFields[0].Focus()
		}
	default:
		*sel = updated
	}
	return w, nil
}

func selectorTitle(step configStep) string {
	if step == configStepFormat {
		return "Default output format"
	}
	return "Default write mode"
}

func optionsFor(step configStep) []components.Option {
	if step == configStepFormat {
		return formatOptions
	}
	return modeOptions
}

func (w ConfigWizard) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		w.result.Config = w.buildConfig()
		w.step = configStepDone
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		w.step = configStepMode
	}
	return w, nil
}

func (w ConfigWizard) buildConfig() config.ProjectConfig {
	quality, _ := strconv.Atoi(w.outputFields[fieldQuality].Value())
	return config.ProjectConfig{
		ExifTool: config.ExifToolConfig{
			Path:   w.exiftoolFields[fieldExifToolPath].Value(),
			Config: w.exiftoolFields[fieldExifToolConfig].Value(),
		},
		Output: config.OutputConfig{
			Directory:    w.outputFields[fieldOutputDir].Value(),
			FallbackRoot: w.outputFields[fieldFallbackRoot].Value(),
			JPEGQuality:  quality,
			Format:       formatOptions[w.format.Cursor()].Value,
		},
		Write: config.WriteConfig{
			Mode:      modeOptions[w.mode.Cursor()].Value,
			Namespace: w.outputFields[fieldNamespace].Value(),
		},
		Fields: w.fields,
	}
}

// View implements tea.Model.
func (w ConfigWizard) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("xmptag - Configuration Builder"))
	b.WriteString("\n")

	switch w.step {
	case configStepExifTool:
		b.WriteString(w.viewInputs("ExifTool", w.exiftoolFields))
	case configStepOutput:
		b.WriteString(w.viewInputs("Output", w.outputFields))
	case configStepFormat:
		b.WriteString(w.format.View())
		b.WriteString(tui.HelpStyle.Render("\n↑/↓ choose • enter continue • esc back"))
	case configStepMode:
		b.WriteString(w.mode.View())
		b.WriteString(tui.HelpStyle.Render("\n↑/↓ choose • enter continue • esc back"))
	case configStepReview:
		b.WriteString(w.viewReview())
	}

	return b.String()
}

func (w ConfigWizard) viewInputs(title string, fields []components.TextField) string {
	var b strings.Builder
	b.WriteString(tui.SubtitleStyle.Render(title))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(f.View())
		b.WriteString("\n\n")
	}
	b.WriteString(tui.HelpStyle.Render(w.keys.InputHelpText()))
	return b.String()
}

func (w ConfigWizard) viewReview() string {
	var b strings.Builder

	b.WriteString(tui.SubtitleStyle.Render("Review Configuration"))
	b.WriteString("\n\n")

	data, err := yaml.Marshal(w.buildConfig())
	if err != nil {
		b.WriteString(tui.ErrorStyle.Render(tui.SymbolCross + " " + err.Error()))
	}
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		b.WriteString(tui.DescriptionStyle.Render("  " + line))
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(w.keys.ReviewHelpText(config.ConfigFileName)))
	return b.String()
}

// Result returns the wizard result.
func (w ConfigWizard) Result() ConfigResult {
	return w.result
}

// RunConfigWizard runs the wizard on the terminal.
func RunConfigWizard(existing *config.ProjectConfig) (ConfigResult, error) {
	p := tea.NewProgram(NewConfigWizard(existing), tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return ConfigResult{Cancelled: true}, err
	}

	return model.(ConfigWizard).Result(), nil
}
