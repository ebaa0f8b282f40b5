package quiz

// RedFlag is a symptom pattern that warrants seeing a doctor whatever the
// computed risk level.
type RedFlag string

const (
	FlagWeightLoss        RedFlag = "unintentional_weight_loss"
	FlagBloodInStool      RedFlag = "blood_in_stool"
	FlagPersistentVomit   RedFlag = "persistent_vomiting"
	FlagNocturnalSymptoms RedFlag = "nocturnal_symptoms"
	FlagSeverePain        RedFlag = "severe_pain"
	FlagLateOnset         RedFlag = "late_onset"
	FlagFamilyHistory     RedFlag = "family_history"
)

// Screening question IDs.
const (
	QuestionWeightLoss    = "rf_weight_loss"
	QuestionBloodInStool  = "rf_blood_in_stool"
	QuestionVomiting      = "rf_vomiting"
	QuestionNightWaking   = "rf_night_waking"
	QuestionPainSeverity  = "rf_pain_severity"
	QuestionOnsetAfter50  = "rf_onset_after_50"
	QuestionFamilyHistory = "rf_family_history"
)

// Scale thresholds (inclusive) for the scale-based red flags.
const (
	NightWakingThreshold  = 3 // "Often"
	PainSeverityThreshold = 3 // "Severe"
)

type redFlagRule struct {
	flag       RedFlag
	questionID string
	minPoints  int
	message    string
}

// redFlagRules is evaluated in order; it also fixes the output order.
var redFlagRules = []redFlagRule{
	{FlagWeightLoss, QuestionWeightLoss, 1, "Unexplained weight loss"},
	{FlagBloodInStool, QuestionBloodInStool, 1, "Blood in stool or black stools"},
	{FlagPersistentVomit, QuestionVomiting, 1, "Repeated vomiting"},
	{FlagNocturnalSymptoms, QuestionNightWaking, NightWakingThreshold, "Symptoms that wake you at night"},
	{FlagSeverePain, QuestionPainSeverity, PainSeverityThreshold, "Severe abdominal pain"},
	{FlagLateOnset, QuestionOnsetAfter50, 1, "New symptoms that began after age 50"},
	{FlagFamilyHistory, QuestionFamilyHistory, 1, "Family history of colon or ovarian cancer, celiac disease, or IBD"},
}

// AllRedFlags returns every red flag in reporting order.
func AllRedFlags() []RedFlag {
	out := make([]RedFlag, len(redFlagRules))
	for i, r := range redFlagRules {
		out[i] = r.flag
	}
	return out
}

// Message returns a short description of the flag.
func (f RedFlag) Message() string {
	for _, r := range redFlagRules {
		if r.flag == f {
			return r.message
		}
	}
	return string(f)
}

// DetectRedFlags evaluates the referral rules directly against raw answers.
// It never looks at category scores.
func DetectRedFlags(answers Answers) ([]RedFlag, error) {
	if answers == nil {
		return nil, ErrNilAnswers
	}

	flags := []RedFlag{}
	for _, r := range redFlagRules {
		v, ok := answers[r.questionID]
		if !ok {
			continue
		}
		q := questionBank[questionIndex[r.questionID]]
		pts, ok := q.Points(v)
		if ok && pts >= r.minPoints {
			flags = append(flags, r.flag)
		}
	}
	return flags, nil
}
