package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bloatai/bloatiq/internal/ui/theme"
)

// ProgressBar is a horizontal bar drawn with block characters, so it still
// reads correctly when colors are stripped.
type ProgressBar struct {
	Label      string
	LabelWidth int // pad labels to this width so bars line up
	Value      int
	Max        int
	Width      int // bar cells
	Color      color.Color
	ShowValue  bool
}

// Filled returns the number of filled cells.
func (p ProgressBar) Filled() int {
	if p.Max <= 0 || p.Width <= 0 {
		return 0
	}
	n := p.Width * p.Value / p.Max
	return min(max(n, 0), p.Width)
}

// View renders the bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		if pad := p.LabelWidth - lipgloss.Width(p.Label); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("  ")
	}

	c := p.Color
	if c == nil {
		c = theme.Secondary
	}
	filled := p.Filled()
	b.WriteString(lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", p.Width-filled)))

	if p.ShowValue {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(" %3d", p.Value)))
	}
	return b.String()
}
