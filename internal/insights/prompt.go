package insights

import (
	"fmt"
	"strings"

	"github.com/bloatai/bloatiq/internal/quiz"
)

const systemPrompt = `You are a friendly digestive-wellness coach inside a bloating self-assessment app. You explain quiz results in plain language. You never diagnose, never name diseases the person might have, and never recommend medication.`

func buildUserMessage(res *quiz.Result, answers quiz.Answers) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall score: %d/100 (%s)\n", res.OverallScore, res.RiskLevel)

	b.WriteString("\nCategory scores:\n")
	for _, c := range quiz.AllCategories() {
		fmt.Fprintf(&b, "- %s: %d\n", c.DisplayName(), res.CategoryScores[c])
	}

	b.WriteString("\nTop causes:\n")
	for _, c := range res.TopCauses {
		fmt.Fprintf(&b, "- %s\n", c.DisplayName())
		for _, line := range notableAnswers(c, answers) {
			fmt.Fprintf(&b, "  * %s\n", line)
		}
	}

	if len(res.RedFlags) > 0 {
		b.WriteString("\nThe person also reported warning signs; a separate referral notice is shown, so do not repeat it.\n")
	}

	b.WriteString(`
Instructions:
1. Write a headline that names the main driver in everyday words.
2. Summarize in 2-4 sentences how the top causes fit together, referring to the answers above.
3. Give 2-4 practical tips the person can try this week. Be specific about amounts and timing.
4. Keep the tone warm and factual. No medical diagnoses, supplements or medications.`)

	return b.String()
}

// notableAnswers lists the answered questions of c that scored above zero,
// rendered as "question: answer".
func notableAnswers(c quiz.Category, answers quiz.Answers) []string {
	var out []string
	for _, q := range quiz.QuestionsFor(c) {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		pts, ok := q.Points(v)
		if !ok || pts == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s %s", q.Text, answerLabel(q, v, pts)))
	}
	return out
}

func answerLabel(q quiz.Question, v any, pts int) string {
	switch q.Kind {
	case quiz.KindScale:
		return q.ScaleLabels()[pts]
	case quiz.KindChoice:
		if s, ok := v.(string); ok {
			if o, ok := q.Option(strings.TrimSpace(s)); ok {
				return o.Label
			}
		}
	case quiz.KindYesNo:
		return "Yes"
	}
	return fmt.Sprint(v)
}
