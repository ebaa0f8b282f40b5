package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command. Cobra keeps flag values between runs, so
// callers pass every flag they depend on.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeAnswers(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestScoreJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "b.db")
	path := writeAnswers(t, "dys_carb_gas: 4\ndys_food_reactions: many\nrf_weight_loss: true\nmystery: 1\n")

	out, errOut, err := execute(t, "score", path, "--json", "--save=false", "--insights=false", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, errOut, `ignoring unknown question "mystery"`)

	var got struct {
		CategoryScores map[string]int `json:"category_scores"`
		OverallScore   int            `json:"overall_score"`
		RiskLevel      string         `json:"risk_level"`
		TopCauses      []string       `json:"top_causes"`
		RedFlags       []string       `json:"red_flags"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.CategoryScores, 7)
	assert.Equal(t, "dysbiosis", got.TopCauses[0])
	assert.Equal(t, []string{"unintentional_weight_loss"}, got.RedFlags)
	assert.NotContains(t, out, `"insight"`)
}

func TestScoreSaveThenHistoryAndShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "b.db")
	first := writeAnswers(t, "dys_carb_gas: 4\ndys_food_reactions: many\n")
	second := writeAnswers(t, "dys_carb_gas: 1\n")

	_, errOut, err := execute(t, "score", first, "--json=false", "--save", "--insights=false", "--note", "before", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Saved assessment")

	out, _, err := execute(t, "score", second, "--json=false", "--save", "--insights=false", "--note", "after", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Since last time", "saved result is compared with the one before")

	out, _, err = execute(t, "history", "--limit", "1", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3, "header, rule and one row")

	out, _, err = execute(t, "show", "--no-ai", "--answers=false", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Note: after")
	assert.Contains(t, out, "Biggest improvement: Gut Dysbiosis")
}

func TestLogAddAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "b.db")

	out, _, err := execute(t, "log", "add", "--meal", "bean chili", "--rating", "7", "--note", "", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, `Logged "bean chili" with bloating 7/10`)

	_, _, err = execute(t, "log", "add", "--meal", "toast", "--rating", "11", "--note", "", "--db", db)
	assert.Error(t, err, "rating above the scale is rejected")

	out, _, err = execute(t, "log", "list", "--days", "1", "--entries", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "avg 7.0")
	assert.Contains(t, out, "bean chili")
}

func TestResetNeedsConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "b.db")

	_, _, err := execute(t, "reset", "--yes=false", "--db", db)
	assert.ErrorContains(t, err, "--yes")

	out, _, err := execute(t, "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "All local data deleted")
}

func TestLLMStatsEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "b.db")
	out, _, err := execute(t, "llm", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM usage recorded yet.")
}

func TestShowAnswersRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "b.db")
	path := writeAnswers(t, "aer_eating_speed: fast\naer_gum: true\nbg_anxiety: 2\n")

	_, _, err := execute(t, "score", path, "--json=false", "--save", "--insights=false", "--note", "", "--db", db)
	require.NoError(t, err)

	out, _, err := execute(t, "show", "--answers", "--no-ai", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "aer_eating_speed: fast")
	assert.Contains(t, out, "aer_gum: true")
	assert.Contains(t, out, "bg_anxiety: 2")
}

func TestQuestionsTemplateScoresZero(t *testing.T) {
	out, _, err := execute(t, "questions", "--template")
	require.NoError(t, err)

	path := writeAnswers(t, out)
	out, _, err = execute(t, "score", path, "--json", "--save=false", "--insights=false", "--db", filepath.Join(t.TempDir(), "b.db"))
	require.NoError(t, err)
	assert.Contains(t, out, `"overall_score": 0`)
	assert.Contains(t, out, `"red_flags": []`)
}

func TestQuestionsListing(t *testing.T) {
	out, _, err := execute(t, "questions", "--template=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Gut Dysbiosis")
	assert.Contains(t, out, "dys_food_reactions")
	assert.Contains(t, out, "none | few | several | many")
	assert.Contains(t, out, "0=Never 1=Rarely")
	assert.Contains(t, out, "Warning signs that trigger a doctor referral")
}
