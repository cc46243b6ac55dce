package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"levelup/internal/engine"
)

// Level Up theme (CLI + TUI).

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSync    = "🔄"
	IconTarget  = "🎯"
	IconChat    = "💬"
	IconMoney   = "💰"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
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
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Hex renders s in a "#RRGGBB" color, as carried by the entity lookups.
func Hex(color, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

func QuestStatusText(q engine.Quest) string {
	return lipgloss.NewStyle().Bold(q.IsCompleted()).Foreground(lipgloss.Color(q.StatusColor())).Render(string(q.Status))
}

func PriorityText(q engine.Quest) string {
	return q.PriorityIcon() + " " + Hex(q.PriorityColor(), q.PriorityLabel())
}

func TierText(a engine.Achievement) string {
	return a.TierEmoji() + " " + Hex(a.TierColor(), a.TierLabel())
}

func DetailTypeText(d engine.ResourceDetail) string {
	return d.TypeIcon() + " " + Hex(d.TypeColor(), d.TypeLabel())
}

// SignedAmount renders a detail contribution green or red by sign.
func SignedAmount(v float64) string {
	if v < 0 {
		return Bad.Render("-" + FormatCurrency(-v))
	}
	return Good.Render("+" + FormatCurrency(v))
}

func ConnText(state string) string {
	switch state {
	case "connected":
		return Good.Render("connected")
	case "failed":
		return Bad.Render("failed")
	default:
		return Muted.Render(state)
	}
}

func StatLine(axis engine.StatAxis, value int) string {
	info := axis.Info()
	return fmt.Sprintf("%s %-10s %s", info.Icon, info.Name, Key.Render(fmt.Sprint(value)))
}
