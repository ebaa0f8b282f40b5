// Package report renders assessments for the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bloatai/bloatiq/internal/insights"
	"github.com/bloatai/bloatiq/internal/quiz"
	"github.com/bloatai/bloatiq/internal/store"
	"github.com/bloatai/bloatiq/internal/ui/components"
	"github.com/bloatai/bloatiq/internal/ui/theme"
)

const barWidth = 24

// Result renders one scored assessment. insight and prev are optional.
func Result(res *quiz.Result, insight *insights.Insight, prev *quiz.Result) string {
	var b strings.Builder

	if res.NeedsReferral() {
		b.WriteString(redFlagBox(res, insight))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Title.Render("Bloat score"))
	b.WriteString(fmt.Sprintf("  %s  %s\n\n",
		lipgloss.NewStyle().Bold(true).Foreground(theme.ScoreColor(res.OverallScore)).
			Render(fmt.Sprintf("%d/100", res.OverallScore)),
		theme.Badge(res.RiskLevel)))

	b.WriteString(section("Categories"))
	b.WriteString(CategoryBars(res.CategoryScores))

	if prev != nil {
		b.WriteString("\n")
		b.WriteString(section("Since last time"))
		b.WriteString(Changes(prev, res))
	}

	if len(res.TopCauses) > 0 {
		b.WriteString("\n")
		b.WriteString(section("Top causes"))
		for i, c := range res.TopCauses {
			b.WriteString(fmt.Sprintf("%d. %s (%d)\n", i+1, theme.Body.Bold(true).Render(c.DisplayName()), res.CategoryScores[c]))
		}
	}

	if insight != nil {
		b.WriteString("\n")
		b.WriteString(Insight(insight))
	}
	return b.String()
}

// CategoryBars renders one bar per category in priority order.
func CategoryBars(scores quiz.CategoryScores) string {
	labelWidth := 0
	for _, c := range quiz.AllCategories() {
		labelWidth = max(labelWidth, lipgloss.Width(c.DisplayName()))
	}

	var b strings.Builder
	for _, c := range quiz.AllCategories() {
		bar := components.ProgressBar{
			Label:      c.DisplayName(),
			LabelWidth: labelWidth,
			Value:      scores[c],
			Max:        100,
			Width:      barWidth,
			Color:      theme.ScoreColor(scores[c]),
			ShowValue:  true,
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}

// Changes lists per-category movement and the overall delta.
func Changes(prev, cur *quiz.Result) string {
	var b strings.Builder
	deltas := quiz.Compare(prev.CategoryScores, cur.CategoryScores)
	for _, d := range deltas {
		if d.Change() == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%-28s %3d → %3d  %s\n", d.Category.DisplayName(), d.Previous, d.Current, signed(d.Change())))
	}
	b.WriteString(fmt.Sprintf("%-28s %3d → %3d  %s\n", "Overall", prev.OverallScore, cur.OverallScore, signed(cur.OverallScore-prev.OverallScore)))
	switch {
	case cur.RiskLevel.Rank() < prev.RiskLevel.Rank():
		b.WriteString(fmt.Sprintf("Risk level dropped: %s → %s\n", prev.RiskLevel, cur.RiskLevel))
	case cur.RiskLevel.Rank() > prev.RiskLevel.Rank():
		b.WriteString(fmt.Sprintf("Risk level rose: %s → %s\n", prev.RiskLevel, cur.RiskLevel))
	}
	if best, ok := quiz.MostImproved(deltas); ok {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Biggest improvement: %s", best.Category.DisplayName())))
		b.WriteString("\n")
	}
	return b.String()
}

// Insight renders headline, summary, per-cause advice and tips.
func Insight(in *insights.Insight) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(in.Headline))
	b.WriteString("\n")
	if in.Summary != "" {
		b.WriteString(theme.Body.Render(in.Summary))
		b.WriteString("\n")
	}

	for _, c := range in.Causes {
		b.WriteString("\n")
		b.WriteString(theme.Body.Bold(true).Render(c.Name))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(c.Explanation))
		b.WriteString("\n")
		for _, a := range c.Actions {
			b.WriteString("  • " + a + "\n")
		}
	}

	if len(in.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(section("Personal tips"))
		for _, t := range in.Tips {
			b.WriteString("  • " + t + "\n")
		}
	}
	if in.Source == insights.SourceLLM {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Tips were personalized by an AI model and are not medical advice."))
		b.WriteString("\n")
	}
	return b.String()
}

func redFlagBox(res *quiz.Result, in *insights.Insight) string {
	var lines []string
	if in != nil && in.Referral != "" {
		lines = append(lines, in.Referral, "")
	} else {
		lines = append(lines, "Some answers point to symptoms a doctor should check.", "")
	}
	for _, f := range res.RedFlags {
		lines = append(lines, "! "+f.Message())
	}
	return theme.Warning.Render(strings.Join(lines, "\n"))
}

// History renders a table of past assessments, newest first, with the change
// in overall score from each one's predecessor. At most limit rows are shown
// (0 = all); rows past the limit only serve as predecessors.
func History(list []*store.Assessment, limit int) string {
	if len(list) == 0 {
		return "No assessments yet. Run `bloatiq quiz` to take one.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-8s  %-16s  %-7s  %-8s  %-6s  %s\n", "ID", "Date", "Overall", "Risk", "Change", "Top cause"))
	b.WriteString(strings.Repeat("─", 78))
	b.WriteString("\n")
	shown := list
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, a := range shown {
		change := ""
		if i+1 < len(list) {
			change = signed(a.Result.OverallScore - list[i+1].Result.OverallScore)
		}
		top := ""
		if len(a.Result.TopCauses) > 0 {
			top = a.Result.TopCauses[0].DisplayName()
		}
		risk := lipgloss.NewStyle().Foreground(theme.RiskColor(a.Result.RiskLevel)).
			Render(fmt.Sprintf("%-8s", a.Result.RiskLevel))
		flag := ""
		if a.Result.NeedsReferral() {
			flag = " !"
		}
		b.WriteString(fmt.Sprintf("%-8s  %-16s  %7d  %s  %-6s  %s%s\n",
			shortID(a.ID),
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			a.Result.OverallScore,
			risk,
			change,
			top,
			flag))
	}
	return b.String()
}

// Symptoms renders a per-day bloating summary.
func Symptoms(days []store.DaySummary) string {
	if len(days) == 0 {
		return "No symptom entries in this period.\n"
	}
	var b strings.Builder
	for _, d := range days {
		bar := components.ProgressBar{
			Label: d.Day.Format("Mon Jan 02"),
			Value: int(d.Average*10 + 0.5),
			Max:   store.MaxRating * 10,
			Width: 20,
			Color: theme.ScoreColor(int(d.Average * 100 / store.MaxRating)),
		}
		b.WriteString(fmt.Sprintf("%s  avg %.1f  worst %d  (%d %s)\n",
			bar.View(), d.Average, d.Worst, d.Entries, plural(d.Entries, "entry", "entries")))
	}
	return b.String()
}

func section(name string) string {
	return theme.Heading.Render(name) + "\n"
}

func signed(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("+%d", n)
	case n < 0:
		return fmt.Sprintf("%d", n)
	default:
		return "±0"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
