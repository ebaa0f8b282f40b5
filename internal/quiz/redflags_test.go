package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRedFlags_NilAnswers(t *testing.T) {
	_, err := DetectRedFlags(nil)
	require.ErrorIs(t, err, ErrNilAnswers)
}

func TestDetectRedFlags_NoneOnEmpty(t *testing.T) {
	flags, err := DetectRedFlags(Answers{})
	require.NoError(t, err)
	assert.NotNil(t, flags)
	assert.Empty(t, flags)
}

func TestDetectRedFlags_Rules(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    []RedFlag
	}{
		{"weight loss", Answers{QuestionWeightLoss: true}, []RedFlag{FlagWeightLoss}},
		{"weight loss as string", Answers{QuestionWeightLoss: "yes"}, []RedFlag{FlagWeightLoss}},
		{"no weight loss", Answers{QuestionWeightLoss: false}, []RedFlag{}},
		{"blood", Answers{QuestionBloodInStool: true}, []RedFlag{FlagBloodInStool}},
		{"vomiting", Answers{QuestionVomiting: true}, []RedFlag{FlagPersistentVomit}},
		{"night waking below threshold", Answers{QuestionNightWaking: NightWakingThreshold - 1}, []RedFlag{}},
		{"night waking at threshold", Answers{QuestionNightWaking: NightWakingThreshold}, []RedFlag{FlagNocturnalSymptoms}},
		{"pain moderate", Answers{QuestionPainSeverity: 2}, []RedFlag{}},
		{"pain severe", Answers{QuestionPainSeverity: PainSeverityThreshold}, []RedFlag{FlagSeverePain}},
		{"pain unbearable", Answers{QuestionPainSeverity: 4}, []RedFlag{FlagSeverePain}},
		{"late onset", Answers{QuestionOnsetAfter50: true}, []RedFlag{FlagLateOnset}},
		{"family history", Answers{QuestionFamilyHistory: true}, []RedFlag{FlagFamilyHistory}},
		{"unreadable value", Answers{QuestionBloodInStool: "maybe"}, []RedFlag{}},
		{"fixed order", Answers{QuestionFamilyHistory: true, QuestionWeightLoss: true}, []RedFlag{FlagWeightLoss, FlagFamilyHistory}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectRedFlags(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Scored answers never affect red flags, whatever their values.
func TestDetectRedFlags_UnaffectedByScoredAnswers(t *testing.T) {
	flagAnswers := Answers{QuestionBloodInStool: true, QuestionNightWaking: 1}
	for _, base := range []Answers{minAnswers(), maxAnswers(), {}} {
		a := Answers{}
		for k, v := range base {
			q, _ := QuestionByID(k)
			if !q.Screening() {
				a[k] = v
			}
		}
		for k, v := range flagAnswers {
			a[k] = v
		}
		got, err := DetectRedFlags(a)
		require.NoError(t, err)
		assert.Equal(t, []RedFlag{FlagBloodInStool}, got)
	}
}

func TestDetectRedFlags_SingleTriggerAmongMaxAnswers(t *testing.T) {
	a := withScreening(maxAnswers(), minValue)
	a[QuestionPainSeverity] = PainSeverityThreshold

	got, err := DetectRedFlags(a)
	require.NoError(t, err)
	assert.Equal(t, []RedFlag{FlagSeverePain}, got)
}

func TestRedFlag_Messages(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range AllRedFlags() {
		msg := f.Message()
		assert.NotEmpty(t, msg)
		assert.NotEqual(t, string(f), msg, "flag %s has no message", f)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}
}
