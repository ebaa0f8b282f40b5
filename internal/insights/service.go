package insights

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bloatai/bloatiq/internal/llm"
	"github.com/bloatai/bloatiq/internal/quiz"
)

// ErrNilResult is returned when Generate is called without a result.
var ErrNilResult = errors.New("insights: nil result")

// Service turns quiz results into insights, personalizing them with an
// LLM when one is available.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewService creates an insight service. provider may be nil, in which
// case only rule-based insights are produced.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Generate returns the insight for res. LLM failures are logged and the
// rule-based insight is returned instead.
func (s *Service) Generate(ctx context.Context, res *quiz.Result, answers quiz.Answers) (*Insight, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	base := RuleBased(res)
	if s.provider == nil {
		return base, nil
	}

	personal, err := s.personalize(ctx, res, answers)
	if err != nil {
		s.logger.Warn("personalized insight failed, using rule-based insight",
			zap.String("model", s.provider.ModelID()),
			zap.Error(err),
		)
		return base, nil
	}

	base.Headline = personal.Headline
	base.Summary = personal.Summary
	base.Tips = personal.Tips
	if s.cfg.MaxTips > 0 && len(base.Tips) > s.cfg.MaxTips {
		base.Tips = base.Tips[:s.cfg.MaxTips]
	}
	base.Source = SourceLLM
	return base, nil
}

type personalOutput struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Tips     []string `json:"tips"`
}

func (s *Service) personalize(ctx context.Context, res *quiz.Result, answers quiz.Answers) (*personalOutput, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeInsights)

	req := llm.Prompt(systemPrompt, buildUserMessage(res, answers), InsightSchema, s.cfg.MaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate insight: %w", err)
	}

	var out personalOutput
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Headline == "" || out.Summary == "" {
		return nil, fmt.Errorf("generate insight: empty headline or summary")
	}
	return &out, nil
}

// RuleBased builds an insight from the static category library.
func RuleBased(res *quiz.Result) *Insight {
	in := &Insight{
		Headline: riskHeadlines[res.RiskLevel],
		Summary:  riskSummaries[res.RiskLevel],
		Causes:   make([]CauseInsight, 0, len(res.TopCauses)),
		Source:   SourceRules,
	}
	if top := res.TopCauses; len(top) > 0 && res.CategoryScores[top[0]] > 0 {
		in.Headline = fmt.Sprintf("%s: %s looks like your main driver", in.Headline, top[0].DisplayName())
	}

	for _, c := range res.TopCauses {
		text := library[c]
		in.Causes = append(in.Causes, CauseInsight{
			Category:    c,
			Name:        c.DisplayName(),
			Score:       res.CategoryScores[c],
			Explanation: text.explanation,
			Actions:     append([]string(nil), text.actions...),
		})
	}

	if res.NeedsReferral() {
		in.Referral = referralNotice
		for _, f := range res.RedFlags {
			in.Warnings = append(in.Warnings, f.Message())
		}
	}
	return in
}
