package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bloatai/bloatiq/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List question IDs and accepted answers for answer files",
	RunE: func(cmd *cobra.Command, args []string) error {
		template, _ := cmd.Flags().GetBool("template")
		w := cmd.OutOrStdout()

		if template {
			a := quiz.Answers{}
			for _, q := range quiz.Questions() {
				a[q.ID] = leastSevere(q)
			}
			data, err := quiz.MarshalAnswers(a)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}

		current := quiz.Category("-")
		for _, q := range quiz.Questions() {
			if q.Category != current {
				current = q.Category
				name := "Warning signs (not scored)"
				if !q.Screening() {
					name = q.Category.DisplayName()
				}
				fmt.Fprintf(w, "\n%s\n%s\n", name, strings.Repeat("─", len(name)))
			}
			fmt.Fprintf(w, "%-24s %s\n%-24s %s\n", q.ID, q.Text, "", acceptedValues(q))
		}

		fmt.Fprintln(w, "\nWarning signs that trigger a doctor referral:")
		for _, f := range quiz.AllRedFlags() {
			fmt.Fprintf(w, "  %-28s %s\n", f, f.Message())
		}
		return nil
	},
}

func acceptedValues(q quiz.Question) string {
	switch q.Kind {
	case quiz.KindScale:
		labels := q.ScaleLabels()
		parts := make([]string, len(labels))
		for i, l := range labels {
			parts[i] = fmt.Sprintf("%d=%s", i, l)
		}
		return strings.Join(parts, " ")
	case quiz.KindYesNo:
		return "yes | no"
	default:
		ids := make([]string, len(q.Options))
		for i, o := range q.Options {
			ids[i] = o.ID
		}
		return strings.Join(ids, " | ")
	}
}

func leastSevere(q quiz.Question) any {
	switch q.Kind {
	case quiz.KindScale:
		return 0
	case quiz.KindYesNo:
		return false
	default:
		return q.Options[0].ID
	}
}

func init() {
	questionsCmd.Flags().Bool("template", false, "Print a YAML answer file with every question at its least severe answer")
}
