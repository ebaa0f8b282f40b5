package insights

import "github.com/bloatai/bloatiq/internal/llm"

// InsightSchema constrains the personalized summary.
var InsightSchema = &llm.Schema{
	Name:        "bloat-insight",
	Description: "Personalized, non-diagnostic summary of a bloating quiz result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One encouraging sentence naming the main driver (at most 12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentences tying the top causes to the person's answers",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific, practical tips (at most 20 words each)",
			},
		},
		"required":             []any{"headline", "summary", "tips"},
		"additionalProperties": false,
	},
}
