package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/bloatai/bloatiq/internal/quiz"
)

// Calm greens and sand tones; risk colors follow traffic-light order.
var (
	Primary   = lipgloss.Color("#10B981") // Emerald
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Warning = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Danger).
		Foreground(Text).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Answered = lipgloss.NewStyle().
			Foreground(TextDim)
)

// RiskColor returns the color of a risk tier.
func RiskColor(r quiz.RiskLevel) color.Color {
	switch r {
	case quiz.RiskHigh:
		return Danger
	case quiz.RiskModerate:
		return Accent
	default:
		return Primary
	}
}

// ScoreColor colors a 0-100 score by the tier it would fall in.
func ScoreColor(score int) color.Color {
	return RiskColor(quiz.GetRiskLevel(score))
}

// Badge renders a risk tier as an inverted label, e.g. " MODERATE ".
func Badge(r quiz.RiskLevel) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0F172A")).
		Background(RiskColor(r)).
		Padding(0, 1).
		Render(string(r))
}
