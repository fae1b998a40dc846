package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleBanner = lipgloss.NewStyle().
			Bold(true)

	styleAlert = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleFizzle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleMenu = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindBanner
	kindAlert
	kindDeath
	kindDialogue
	kindFizzle
)

// classifyLine determines what kind of battle line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "*** "):
		return kindBanner
	case strings.HasPrefix(line, ">>> "):
		return kindAlert
	case strings.HasSuffix(line, "has fallen!"):
		return kindDeath
	case strings.Contains(line, "critical"):
		return kindAlert
	case strings.Contains(line, `: "`):
		return kindDialogue
	case strings.Contains(line, "is silenced and cannot cast"),
		strings.Contains(line, "is on cooldown"),
		strings.Contains(line, "lacks the MP"):
		return kindFizzle
	default:
		return kindNarration
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindBanner:
		return styleBanner.Render(line)
	case kindAlert:
		return styleAlert.Render(line)
	case kindDeath:
		return styleDeath.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindFizzle:
		return styleFizzle.Render(line)
	default:
		return styleNarration.Render(line)
	}
}
