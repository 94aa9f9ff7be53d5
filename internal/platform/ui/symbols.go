// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Símbolos y separadores compartidos por los presenters.
const (
	IconTarget  = "🎯"
	IconStage   = "📍"
	IconWorkers = "⚙"
	IconTime    = "⏱"
	IconFactor  = "🔑"

	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

// Symbol retorna el símbolo Unicode para cada estado.
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "⏸"
	case StatusRunning:
		return "⣾"
	case StatusSolved:
		return "✓"
	case StatusFailed:
		return "✗"
	case StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

// Color retorna el color pterm para cada estado.
func (s Status) Color() pterm.Color {
	switch s {
	case StatusRunning:
		return pterm.FgCyan
	case StatusSolved:
		return pterm.FgGreen
	case StatusFailed:
		return pterm.FgRed
	case StatusSkipped:
		return pterm.FgGray
	default:
		return pterm.FgDefault
	}
}
