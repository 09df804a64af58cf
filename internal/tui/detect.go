package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for xmptag.
type Mode int

const (
	// ModeNonInteractive is used for scripts, pipelines and host plugins.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// EnvNonInteractive forces non-interactive mode when set to "1".
const EnvNonInteractive = "XMPTAG_NON_INTERACTIVE"

// DetectMode determines whether xmptag may prompt or start a wizard.
//
// Returns ModeNonInteractive if:
//   - XMPTAG_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	return ModeFor(os.Getenv,
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stdout.Fd())))
}

// ModeFor applies the DetectMode rules to explicit inputs.
func ModeFor(getenv func(string) string, stdinTTY, stdoutTTY bool) Mode {
	if getenv(EnvNonInteractive) == "1" || getenv("CI") != "" || getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	if !stdinTTY || !stdoutTTY {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
