package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBank_CoversEveryCategory(t *testing.T) {
	for _, c := range AllCategories() {
		qs := QuestionsFor(c)
		assert.NotEmpty(t, qs, "category %s has no questions", c)
		assert.Positive(t, categoryMax[c], "category %s has zero max", c)
	}
}

func TestQuestionBank_WellFormed(t *testing.T) {
	for _, q := range Questions() {
		t.Run(q.ID, func(t *testing.T) {
			assert.NotEmpty(t, q.Text)
			assert.Positive(t, q.Weight)
			if !q.Screening() {
				assert.True(t, q.Category.Valid(), "unknown category %q", q.Category)
			}
			switch q.Kind {
			case KindChoice:
				require.NotEmpty(t, q.Options)
				assert.Equal(t, 0, q.Options[0].Points, "least severe option must score 0")
				ids := map[string]bool{}
				for i, o := range q.Options {
					assert.False(t, ids[o.ID], "duplicate option %q", o.ID)
					ids[o.ID] = true
					assert.NotEmpty(t, o.Label)
					if i > 0 {
						assert.GreaterOrEqual(t, o.Points, q.Options[i-1].Points, "options must not decrease")
					}
				}
			case KindScale:
				assert.Empty(t, q.Options)
				assert.Len(t, q.ScaleLabels(), ScaleMax+1)
			case KindYesNo:
				assert.Empty(t, q.Options)
			default:
				t.Fatalf("unknown kind %q", q.Kind)
			}
		})
	}
}

func TestQuestionBank_RedFlagQuestionsAreScreening(t *testing.T) {
	for _, r := range redFlagRules {
		q, ok := QuestionByID(r.questionID)
		require.True(t, ok, "missing question %s", r.questionID)
		assert.True(t, q.Screening(), "%s must not feed a category", r.questionID)
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("mot_bowel_frequency")
	require.True(t, ok)
	assert.Equal(t, CategoryMotility, q.Category)
	assert.Equal(t, 3, q.MaxPoints())

	_, ok = QuestionByID("nope")
	assert.False(t, ok)
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].ID = "mutated"
	_, ok := QuestionByID("aer_belching")
	assert.True(t, ok)
	assert.Equal(t, "aer_belching", Questions()[0].ID)
}

func TestQuestions_EditingOptionsLeavesScoringAlone(t *testing.T) {
	answers := Answers{"aer_eating_speed": "fast", "aer_belching": 2}
	before, err := CalculateQuizScores(answers)
	require.NoError(t, err)
	require.Positive(t, before[CategoryAerophagia])

	for _, q := range Questions() {
		for i := range q.Options {
			q.Options[i].Points = 0
			q.Options[i].ID = "edited"
		}
		for i := range q.Labels {
			q.Labels[i] = "edited"
		}
	}
	speed, _ := QuestionByID("aer_eating_speed")
	speed.Options[2].Points = 0
	for _, q := range QuestionsFor(CategoryAerophagia) {
		if len(q.Options) > 0 {
			q.Options[0].ID = "edited"
		}
	}
	pain, _ := QuestionByID(QuestionPainSeverity)
	pain.Labels[4] = "edited"

	after, err := CalculateQuizScores(answers)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	fresh, _ := QuestionByID("aer_eating_speed")
	assert.Equal(t, "fast", fresh.Options[2].ID)
	assert.Equal(t, 2, fresh.Options[2].Points)
	assert.Equal(t, SeverityLabels, Questions()[len(Questions())-3].Labels)
}

func TestCategoryDisplayNames_Exhaustive(t *testing.T) {
	require.Len(t, CategoryDisplayNames, len(AllCategories()))
	seen := map[string]bool{}
	for _, c := range AllCategories() {
		name := c.DisplayName()
		assert.NotEmpty(t, name)
		assert.NotEqual(t, string(c), name, "category %s falls through to its ID", c)
		assert.False(t, seen[name], "duplicate display name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "mystery", Category("mystery").DisplayName())
}

func TestAllCategories_PriorityOrder(t *testing.T) {
	want := []Category{
		CategoryAerophagia, CategoryBrainGut, CategoryDysbiosis, CategoryHormonal,
		CategoryLifestyle, CategoryMotility, CategoryStructural,
	}
	assert.Equal(t, want, AllCategories())

	cats := AllCategories()
	cats[0] = "changed"
	assert.Equal(t, want, AllCategories())
	for i, c := range want {
		assert.Equal(t, i, c.priority())
	}
}

func TestQuestion_Points(t *testing.T) {
	sleep, _ := QuestionByID("bg_sleep")
	pts, ok := sleep.Points("poor")
	assert.True(t, ok)
	assert.Equal(t, 2, pts)

	_, ok = sleep.Points(2)
	assert.False(t, ok)

	belch, _ := QuestionByID("aer_belching")
	pts, ok = belch.Points(2.6)
	assert.True(t, ok)
	assert.Equal(t, 3, pts)
	pts, ok = belch.Points(int64(9))
	assert.True(t, ok)
	assert.Equal(t, ScaleMax, pts)
}
