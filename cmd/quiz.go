package cmd

import (
	"context"
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bloatai/bloatiq/internal/app"
	"github.com/bloatai/bloatiq/internal/insights"
	"github.com/bloatai/bloatiq/internal/llm"
	"github.com/bloatai/bloatiq/internal/quiz"
	"github.com/bloatai/bloatiq/internal/report"
	"github.com/bloatai/bloatiq/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the bloating quiz interactively",
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().Bool("fresh", false, "Do not pre-select answers from your last assessment")
	quizCmd.Flags().Bool("no-save", false, "Show the result without storing it")
	quizCmd.Flags().Bool("no-ai", false, "Skip AI-personalized insights")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	fresh, _ := cmd.Flags().GetBool("fresh")
	noSave, _ := cmd.Flags().GetBool("no-save")
	noAI, _ := cmd.Flags().GetBool("no-ai")
	ctx := cmd.Context()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	repo := s.AssessmentRepo()

	latest, err := repo.List(ctx, store.QueryOpts{Limit: 1})
	if err != nil {
		return err
	}

	opts := app.Options{AskNote: !noSave}
	if len(latest) > 0 && !fresh {
		opts.Prefill = latest[0].Answers
	}

	out, err := app.Run(opts)
	if err != nil {
		return err
	}
	if out.Aborted {
		fmt.Fprintln(cmd.ErrOrStderr(), "Quiz cancelled; nothing was saved.")
		return nil
	}

	res, err := quiz.Assess(out.Answers)
	if err != nil {
		return err
	}

	var prev *quiz.Result
	if len(latest) > 0 {
		prev = &latest[0].Result
	}

	if !noSave {
		a := &store.Assessment{Answers: out.Answers, Result: *res, Note: out.Note}
		if err := repo.Save(ctx, a); err != nil {
			return err
		}
		logger.Debug("saved assessment", zap.String("id", a.ID), zap.Int("overall", res.OverallScore))
	}

	insight, err := buildInsight(ctx, s, res, out.Answers, !noAI)
	if err != nil {
		return err
	}
	lipgloss.Fprintln(cmd.OutOrStdout(), report.Result(res, insight, prev))
	return nil
}

// buildInsight returns the rule-based insight, personalized by an LLM when
// useLLM is set and a provider is configured in the environment.
func buildInsight(ctx context.Context, s *store.Store, res *quiz.Result, answers quiz.Answers, useLLM bool) (*insights.Insight, error) {
	var provider llm.Provider
	if useLLM {
		p, err := llm.NewProviderFromEnv(ctx, s.EventRepo(), logger)
		switch {
		case err == nil:
			provider = p
		case errors.Is(err, llm.ErrNotConfigured):
			logger.Debug("no LLM provider configured, using rule-based insights")
		default:
			logger.Warn("LLM provider unavailable, using rule-based insights", zap.Error(err))
		}
	}

	svc := insights.NewService(provider, insights.DefaultConfig(), logger)
	return svc.Generate(ctx, res, answers)
}
