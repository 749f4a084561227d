package editor

import (
	"github.com/charmbracelet/lipgloss"

	"prescreen/internal/question"
)

// badgeColor returns the foreground and background of a badge.
func badgeColor(b question.Badge) (lipgloss.Color, lipgloss.Color) {
	switch b {
	case question.BadgeSingleChoice:
		return lipgloss.Color("15"), lipgloss.Color("25")
	case question.BadgeMultipleChoice:
		return lipgloss.Color("15"), lipgloss.Color("30")
	case question.BadgeFreeText:
		return lipgloss.Color("15"), lipgloss.Color("97")
	case question.BadgeCustomType:
		return lipgloss.Color("0"), lipgloss.Color("250")
	case question.BadgeDisqualifier:
		return lipgloss.Color("15"), lipgloss.Color("160")
	case question.BadgeEligibility:
		return lipgloss.Color("0"), lipgloss.Color("114")
	case question.BadgeTechnicalSkills:
		return lipgloss.Color("0"), lipgloss.Color("179")
	}
	panic("editor: unhandled badge")
}

func renderBadge(b question.Badge, noColor bool) string {
	if noColor {
		return "[" + b.Label() + "]"
	}
	fg, bg := badgeColor(b)
	return lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1).Render(b.Label())
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	greetingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	originStyle   = lipgloss.NewStyle().Faint(true)
	hoverStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
