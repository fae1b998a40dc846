package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/raidcore/engine"
)

// renderStatusBar produces a full-width inverted status line showing
// each hero's hp, the boss hp with phase, and the round number.
func (m Model) renderStatusBar() string {
	snap := m.battle.Snapshot()

	boss := fmt.Sprintf("%s %.0f/%.0f", snap.Boss.Name, snap.Boss.HP, snap.Boss.MaxHP)
	if snap.Boss.Shield > 0 {
		boss += fmt.Sprintf("+%.0f", snap.Boss.Shield)
	}
	right := fmt.Sprintf("%s P%d | R:%d ", boss, snap.Boss.Phase, snap.Round)

	segs := make([]string, 0, len(snap.Party))
	for _, h := range snap.Party {
		segs = append(segs, heroSegment(h, false))
	}
	left := " " + strings.Join(segs, " | ")

	// Add mana to each hero segment when everything still fits.
	long := make([]string, 0, len(snap.Party))
	for _, h := range snap.Party {
		long = append(long, heroSegment(h, true))
	}
	candidate := " " + strings.Join(long, " | ")
	if lipgloss.Width(candidate)+lipgloss.Width(right)+2 < m.width {
		left = candidate
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// heroSegment formats one hero for the status bar. Dead heroes show as
// "down"; silenced heroes carry a marker.
func heroSegment(h engine.HeroStatus, withMP bool) string {
	if !h.Alive {
		return fmt.Sprintf("%s down", h.Name)
	}
	seg := fmt.Sprintf("%s %.0f/%.0f", h.Name, h.HP, h.MaxHP)
	if withMP {
		seg += fmt.Sprintf(" MP %.0f/%.0f", h.MP, h.MaxMP)
	}
	if h.Silenced {
		seg += " [silenced]"
	}
	return seg
}
