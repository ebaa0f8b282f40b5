package insights

import "github.com/bloatai/bloatiq/internal/quiz"

// Source says where an Insight's text came from.
type Source string

const (
	SourceRules Source = "rules"
	SourceLLM   Source = "llm"
)

// Insight is the readable interpretation of a quiz result.
type Insight struct {
	Headline string         `json:"headline"`
	Summary  string         `json:"summary"`
	Causes   []CauseInsight `json:"causes"`

	// Tips are extra personalized suggestions; empty for rule-based insights.
	Tips []string `json:"tips,omitempty"`

	// Referral is set whenever the result carries red flags.
	Referral string   `json:"referral,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	Source Source `json:"source"`
}

// CauseInsight explains one of the top causes.
type CauseInsight struct {
	Category    quiz.Category `json:"category"`
	Name        string        `json:"name"`
	Score       int           `json:"score"`
	Explanation string        `json:"explanation"`
	Actions     []string      `json:"actions"`
}
