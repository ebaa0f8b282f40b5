package cmd

import (
	"encoding/json"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/bloatai/bloatiq/internal/insights"
	"github.com/bloatai/bloatiq/internal/quiz"
	"github.com/bloatai/bloatiq/internal/report"
	"github.com/bloatai/bloatiq/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers-file>",
	Short: "Score a YAML or JSON answer file",
	Long: "Score a YAML or JSON file mapping question IDs to answers, e.g.\n\n" +
		"  aer_belching: 3\n  aer_eating_speed: fast\n  aer_gum: yes\n\n" +
		"Unanswered questions count as zero.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")
		withInsights, _ := cmd.Flags().GetBool("insights")
		note, _ := cmd.Flags().GetString("note")
		ctx := cmd.Context()

		answers, err := quiz.LoadAnswers(args[0])
		if err != nil {
			return err
		}
		for _, id := range answers.Unrecognized() {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring unknown question %q\n", id)
		}

		res, err := quiz.Assess(answers)
		if err != nil {
			return err
		}

		var (
			s    *store.Store
			prev *quiz.Result
		)
		if save || withInsights {
			if s, err = openStore(cmd); err != nil {
				return err
			}
			defer s.Close()
		}
		if save {
			a := &store.Assessment{Answers: answers, Result: *res, Note: note}
			if err := s.AssessmentRepo().Save(ctx, a); err != nil {
				return err
			}
			p, err := s.AssessmentRepo().Previous(ctx, a)
			if err != nil {
				return err
			}
			if p != nil {
				prev = &p.Result
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved assessment %s\n", a.ID)
		}

		var insight *insights.Insight
		if withInsights {
			if insight, err = buildInsight(ctx, s, res, answers, true); err != nil {
				return err
			}
		}

		if asJSON {
			out := struct {
				*quiz.Result
				Insight *insights.Insight `json:"insight,omitempty"`
			}{res, insight}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		lipgloss.Fprintln(cmd.OutOrStdout(), report.Result(res, insight, prev))
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	scoreCmd.Flags().Bool("save", false, "Store the assessment in the local database")
	scoreCmd.Flags().Bool("insights", false, "Add insights (AI-personalized when a provider is configured)")
	scoreCmd.Flags().String("note", "", "Note to store with a saved assessment")
}
