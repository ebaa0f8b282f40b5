package quiz

import "fmt"

// Result is the complete output of scoring one answer set.
type Result struct {
	CategoryScores CategoryScores `json:"category_scores"`
	OverallScore   int            `json:"overall_score"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	TopCauses      []Category     `json:"top_causes"`
	RedFlags       []RedFlag      `json:"red_flags"`
}

// NeedsReferral reports whether any red flag was raised.
func (r *Result) NeedsReferral() bool {
	return len(r.RedFlags) > 0
}

// Assess runs the whole scoring pipeline. Red flags are reported next to the
// numeric results and never change them.
func Assess(answers Answers) (*Result, error) {
	scores, err := CalculateQuizScores(answers)
	if err != nil {
		return nil, fmt.Errorf("score answers: %w", err)
	}
	flags, err := DetectRedFlags(answers)
	if err != nil {
		return nil, fmt.Errorf("detect red flags: %w", err)
	}

	overall := CalculateOverallScore(scores)
	return &Result{
		CategoryScores: scores,
		OverallScore:   overall,
		RiskLevel:      GetRiskLevel(overall),
		TopCauses:      GetTopCauses(scores, DefaultTopCauses),
		RedFlags:       flags,
	}, nil
}
