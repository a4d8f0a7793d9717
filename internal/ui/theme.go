package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Founder OS CLI theme: a few reusable styles and glyphs.

const (
	IconRocket  = "🚀"
	IconFire    = "🔥"
	IconCheck   = "✅"
	IconCircle  = "⬜"
	IconTrophy  = "🏆"
	IconMoney   = "💰"
	IconQuote   = "💬"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconCloud   = "☁️"
	IconOffline = "📴"
)

var (
	cPrimary = lipgloss.Color("63")  // indigo
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// SyncBadge renders a sync status for the status line.
func SyncBadge(status string) string {
	switch status {
	case "synced":
		return Good.Render(IconCloud + " synced")
	case "syncing":
		return Warn.Render(IconCloud + " syncing")
	case "error":
		return Bad.Render(IconOffline + " offline")
	case "local":
		return Muted.Render(IconOffline + " local only")
	default:
		return Muted.Render(IconCloud + " idle")
	}
}
