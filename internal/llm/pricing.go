package llm

import "strings"

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int64) float64 {
	return float64(inputTokens)*c.InputPerMTok/1e6 + float64(outputTokens)*c.OutputPerMTok/1e6
}

// LookupCost returns pricing for a model ID. Aliases and OpenRouter
// vendor prefixes are resolved first.
func LookupCost(modelID string) (ModelCost, bool) {
	for _, aliases := range []map[string]string{anthropicModels, geminiModels} {
		modelID = resolveModel(modelID, aliases)
	}
	if c, ok := modelCosts[modelID]; ok {
		return c, true
	}
	if _, name, ok := strings.Cut(modelID, "/"); ok {
		c, ok := modelCosts[name]
		return c, ok
	}
	return ModelCost{}, false
}

// Prices as published by each vendor, 2026-02.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-opus-4-5":            {5, 25},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
