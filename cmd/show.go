package cmd

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/bloatai/bloatiq/internal/quiz"
	"github.com/bloatai/bloatiq/internal/report"
	"github.com/bloatai/bloatiq/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored assessment (the latest by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noAI, _ := cmd.Flags().GetBool("no-ai")
		answersOnly, _ := cmd.Flags().GetBool("answers")
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		repo := s.AssessmentRepo()

		var a *store.Assessment
		if len(args) == 0 {
			list, err := repo.List(ctx, store.QueryOpts{Limit: 1})
			if err != nil {
				return err
			}
			if len(list) == 0 {
				return fmt.Errorf("no assessments yet; run `bloatiq quiz` first")
			}
			a = list[0]
		} else if a, err = findAssessment(cmd, repo, args[0]); err != nil {
			return err
		}

		if answersOnly {
			data, err := quiz.MarshalAnswers(a.Answers)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		p, err := repo.Previous(ctx, a)
		if err != nil {
			return err
		}
		var prev *quiz.Result
		if p != nil {
			prev = &p.Result
		}

		insight, err := buildInsight(ctx, s, &a.Result, a.Answers, !noAI)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Assessment %s  %s\n", a.ID, a.CreatedAt.Local().Format("2006-01-02 15:04"))
		if a.Note != "" {
			fmt.Fprintf(w, "Note: %s\n", a.Note)
		}
		fmt.Fprintln(w)
		lipgloss.Fprintln(w, report.Result(&a.Result, insight, prev))
		return nil
	},
}

// findAssessment resolves a full ID or the short prefix printed by history.
func findAssessment(cmd *cobra.Command, repo store.AssessmentRepo, id string) (*store.Assessment, error) {
	a, err := repo.Get(cmd.Context(), id)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	list, err := repo.List(cmd.Context(), store.QueryOpts{})
	if err != nil {
		return nil, err
	}
	var match *store.Assessment
	for _, c := range list {
		if strings.HasPrefix(c.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("assessment prefix %q is ambiguous", id)
			}
			match = c
		}
	}
	if match == nil {
		return nil, fmt.Errorf("assessment %q: %w", id, store.ErrNotFound)
	}
	return match, nil
}

func init() {
	showCmd.Flags().Bool("no-ai", false, "Skip AI-personalized insights")
	showCmd.Flags().Bool("answers", false, "Print the stored answers as YAML, usable with `bloatiq score`")
}
