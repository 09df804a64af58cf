package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSymbolStyles(t *testing.T) {
	tests := []struct {
		name   string
		style  lipgloss.Style
		symbol string
	}{
		{"success", SuccessStyle, SymbolCheck},
		{"error", ErrorStyle, SymbolCross},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render(tt.symbol), tt.symbol)
		})
	}
}
