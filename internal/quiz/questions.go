package quiz

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// QuestionKind describes how an answer value is interpreted.
type QuestionKind string

const (
	// KindScale answers are integers from 0 to ScaleMax.
	KindScale QuestionKind = "scale"
	// KindChoice answers are the ID of one option.
	KindChoice QuestionKind = "choice"
	// KindYesNo answers are booleans (or "yes"/"no").
	KindYesNo QuestionKind = "yesno"
)

// ScaleMax is the highest value on every scale question.
const ScaleMax = 4

// FrequencyLabels label scale values 0..ScaleMax for frequency questions.
var FrequencyLabels = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}

// SeverityLabels label scale values 0..ScaleMax for severity questions.
var SeverityLabels = []string{"None", "Mild", "Moderate", "Severe", "Unbearable"}

// Option is one selectable answer of a choice question. Options are listed
// from least to most severe and their points never decrease.
type Option struct {
	ID     string
	Label  string
	Points int
}

// Question is a single quiz item.
type Question struct {
	ID       string
	Text     string
	Category Category // empty for screening questions
	Kind     QuestionKind
	Weight   int
	Options  []Option // KindChoice only
	Labels   []string // KindScale only; defaults to FrequencyLabels
}

// Screening reports whether the question only feeds red-flag detection.
func (q Question) Screening() bool {
	return q.Category == ""
}

// MaxPoints is the highest unweighted point value the question can yield.
func (q Question) MaxPoints() int {
	switch q.Kind {
	case KindScale:
		return ScaleMax
	case KindYesNo:
		return 1
	case KindChoice:
		best := 0
		for _, o := range q.Options {
			best = max(best, o.Points)
		}
		return best
	default:
		return 0
	}
}

// ScaleLabels returns the labels for a scale question.
func (q Question) ScaleLabels() []string {
	if len(q.Labels) == ScaleMax+1 {
		return q.Labels
	}
	return FrequencyLabels
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Points converts a raw answer into unweighted points. The second result is
// false when the value cannot be read for this question kind; such answers
// count as unanswered.
func (q Question) Points(v any) (int, bool) {
	switch q.Kind {
	case KindScale:
		n, ok := scaleValue(v)
		if !ok {
			return 0, false
		}
		return min(max(n, 0), ScaleMax), true
	case KindYesNo:
		yes, ok := yesNoValue(v)
		if !ok {
			return 0, false
		}
		if yes {
			return 1, true
		}
		return 0, true
	case KindChoice:
		s, ok := v.(string)
		if !ok {
			return 0, false
		}
		o, ok := q.Option(strings.TrimSpace(s))
		if !ok {
			return 0, false
		}
		return o.Points, true
	default:
		return 0, false
	}
}

func scaleValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return scaleFromInt(int64(n)), true
	case int8:
		return scaleFromInt(int64(n)), true
	case int16:
		return scaleFromInt(int64(n)), true
	case int32:
		return scaleFromInt(int64(n)), true
	case int64:
		return scaleFromInt(n), true
	case uint:
		return scaleFromUint(uint64(n)), true
	case uint8:
		return scaleFromUint(uint64(n)), true
	case uint16:
		return scaleFromUint(uint64(n)), true
	case uint32:
		return scaleFromUint(uint64(n)), true
	case uint64:
		return scaleFromUint(n), true
	case float32:
		return scaleFromFloat(float64(n))
	case float64:
		return scaleFromFloat(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return scaleFromFloat(f)
	default:
		return 0, false
	}
}

// scaleFromInt clamps in int64 so the conversion never wraps.
func scaleFromInt(n int64) int {
	return int(min(max(n, 0), ScaleMax))
}

func scaleFromUint(n uint64) int {
	return int(min(n, ScaleMax))
}

func scaleFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	f = math.Max(math.Min(f, ScaleMax), 0)
	return int(math.Round(f)), true
}

func yesNoValue(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "y", "true":
			return true, true
		case "no", "n", "false":
			return false, true
		}
	}
	return false, false
}

// questionBank is the closed catalog. Order is presentation order.
var questionBank = []Question{
	// Aerophagia
	{ID: "aer_belching", Text: "How often do you belch or burp more than you'd like?", Category: CategoryAerophagia, Kind: KindScale, Weight: 2},
	{ID: "aer_eating_speed", Text: "How long does a typical meal take you?", Category: CategoryAerophagia, Kind: KindChoice, Weight: 2, Options: []Option{
		{ID: "slow", Label: "More than 20 minutes", Points: 0},
		{ID: "moderate", Label: "10 to 20 minutes", Points: 1},
		{ID: "fast", Label: "Under 10 minutes", Points: 2},
	}},
	{ID: "aer_carbonated", Text: "How often do you drink sparkling water, soda, or beer?", Category: CategoryAerophagia, Kind: KindScale, Weight: 1},
	{ID: "aer_gum", Text: "Do you chew gum, use straws, or suck on hard candy most days?", Category: CategoryAerophagia, Kind: KindYesNo, Weight: 1},

	// Brain-gut axis
	{ID: "bg_stress_flare", Text: "How often does stress or anxiety set off your bloating?", Category: CategoryBrainGut, Kind: KindScale, Weight: 3},
	{ID: "bg_anxiety", Text: "How often do you feel anxious, tense, or on edge?", Category: CategoryBrainGut, Kind: KindScale, Weight: 2},
	{ID: "bg_sleep", Text: "How would you rate your sleep?", Category: CategoryBrainGut, Kind: KindChoice, Weight: 1, Options: []Option{
		{ID: "good", Label: "Good", Points: 0},
		{ID: "fair", Label: "Fair", Points: 1},
		{ID: "poor", Label: "Poor", Points: 2},
		{ID: "very_poor", Label: "Very poor", Points: 3},
	}},
	{ID: "bg_relief_after_bm", Text: "Does belly discomfort ease after a bowel movement?", Category: CategoryBrainGut, Kind: KindYesNo, Weight: 2},

	// Dysbiosis
	{ID: "dys_antibiotics", Text: "How many courses of antibiotics have you taken in the last 12 months?", Category: CategoryDysbiosis, Kind: KindChoice, Weight: 2, Options: []Option{
		{ID: "none", Label: "None", Points: 0},
		{ID: "one", Label: "One", Points: 1},
		{ID: "multiple", Label: "Two or more", Points: 2},
	}},
	{ID: "dys_carb_gas", Text: "How often do you get gas or bloating 1 to 3 hours after beans, bread, fruit, or sugar-free sweets?", Category: CategoryDysbiosis, Kind: KindScale, Weight: 3},
	{ID: "dys_food_reactions", Text: "How many foods have you noticed you react to?", Category: CategoryDysbiosis, Kind: KindChoice, Weight: 2, Options: []Option{
		{ID: "none", Label: "None", Points: 0},
		{ID: "few", Label: "One or two", Points: 1},
		{ID: "several", Label: "Several", Points: 2},
		{ID: "many", Label: "So many it's hard to eat", Points: 3},
	}},
	{ID: "dys_worse_through_day", Text: "Does your bloating build steadily over the day?", Category: CategoryDysbiosis, Kind: KindYesNo, Weight: 1},

	// Hormonal
	{ID: "hor_cycle", Text: "Does your bloating follow a monthly pattern, such as before or during a period?", Category: CategoryHormonal, Kind: KindChoice, Weight: 3, Options: []Option{
		{ID: "not_applicable", Label: "Doesn't apply to me", Points: 0},
		{ID: "no", Label: "No", Points: 0},
		{ID: "sometimes", Label: "Sometimes", Points: 1},
		{ID: "yes", Label: "Yes, clearly", Points: 2},
	}},
	{ID: "hor_water_retention", Text: "How often do you notice puffiness or water retention (tight rings, swollen ankles)?", Category: CategoryHormonal, Kind: KindScale, Weight: 2},
	{ID: "hor_thyroid", Text: "Do you have a thyroid condition, or frequent cold hands with fatigue?", Category: CategoryHormonal, Kind: KindYesNo, Weight: 2},
	{ID: "hor_recent_change", Text: "Have you recently started or changed birth control or HRT, or entered perimenopause?", Category: CategoryHormonal, Kind: KindYesNo, Weight: 1},

	// Lifestyle
	{ID: "life_fiber_jump", Text: "Have you recently added a lot of fiber, protein bars, or supplements?", Category: CategoryLifestyle, Kind: KindYesNo, Weight: 1},
	{ID: "life_late_meals", Text: "How often do you eat a large meal late in the evening?", Category: CategoryLifestyle, Kind: KindScale, Weight: 2},
	{ID: "life_activity", Text: "How active are you on a typical day?", Category: CategoryLifestyle, Kind: KindChoice, Weight: 2, Options: []Option{
		{ID: "active", Label: "Very active", Points: 0},
		{ID: "moderate", Label: "Moderately active", Points: 1},
		{ID: "light", Label: "Lightly active", Points: 2},
		{ID: "sedentary", Label: "Mostly sitting", Points: 3},
	}},
	{ID: "life_alcohol", Text: "How often do you drink alcohol?", Category: CategoryLifestyle, Kind: KindScale, Weight: 1},
	{ID: "life_water", Text: "How much water do you drink a day?", Category: CategoryLifestyle, Kind: KindChoice, Weight: 1, Options: []Option{
		{ID: "plenty", Label: "8 glasses or more", Points: 0},
		{ID: "some", Label: "4 to 7 glasses", Points: 1},
		{ID: "little", Label: "Fewer than 4 glasses", Points: 2},
	}},

	// Motility
	{ID: "mot_bowel_frequency", Text: "How often do you have a bowel movement?", Category: CategoryMotility, Kind: KindChoice, Weight: 3, Options: []Option{
		{ID: "daily", Label: "Once or more a day", Points: 0},
		{ID: "every_other_day", Label: "Every other day", Points: 1},
		{ID: "few_per_week", Label: "Two or three times a week", Points: 2},
		{ID: "rarely", Label: "Less than twice a week", Points: 3},
	}},
	{ID: "mot_straining", Text: "How often do you strain or feel you haven't fully emptied?", Category: CategoryMotility, Kind: KindScale, Weight: 2},
	{ID: "mot_early_fullness", Text: "How often do you feel full after a few bites, or stay full for hours?", Category: CategoryMotility, Kind: KindScale, Weight: 2},
	{ID: "mot_nausea", Text: "How often do you feel queasy after meals?", Category: CategoryMotility, Kind: KindScale, Weight: 1},

	// Structural
	{ID: "str_visible_distension", Text: "How often does your belly visibly swell by evening and flatten overnight?", Category: CategoryStructural, Kind: KindScale, Weight: 2},
	{ID: "str_surgery_hernia", Text: "Have you had abdominal surgery, or been diagnosed with a hernia or endometriosis?", Category: CategoryStructural, Kind: KindYesNo, Weight: 3},
	{ID: "str_position", Text: "How often is bloating worse when sitting, slouching, or bending?", Category: CategoryStructural, Kind: KindScale, Weight: 1},
	{ID: "str_pelvic_pressure", Text: "Do you have pelvic pressure or trouble fully emptying your bladder?", Category: CategoryStructural, Kind: KindYesNo, Weight: 2},

	// Screening
	{ID: QuestionWeightLoss, Text: "Have you lost weight recently without trying?", Kind: KindYesNo, Weight: 1},
	{ID: QuestionBloodInStool, Text: "Have you noticed blood in your stool or black, tarry stools?", Kind: KindYesNo, Weight: 1},
	{ID: QuestionVomiting, Text: "Have you had repeated vomiting?", Kind: KindYesNo, Weight: 1},
	{ID: QuestionNightWaking, Text: "How often do belly symptoms wake you up at night?", Kind: KindScale, Weight: 1},
	{ID: QuestionPainSeverity, Text: "How bad is your worst belly pain?", Kind: KindScale, Weight: 1, Labels: SeverityLabels},
	{ID: QuestionOnsetAfter50, Text: "Did these symptoms first start after age 50?", Kind: KindYesNo, Weight: 1},
	{ID: QuestionFamilyHistory, Text: "Has a close relative had colon cancer, ovarian cancer, celiac disease, or IBD?", Kind: KindYesNo, Weight: 1},
}

var (
	questionIndex = map[string]int{}
	// categoryMax is the maximum weighted raw score per category.
	categoryMax = map[Category]int{}
)

func init() {
	for i, q := range questionBank {
		if _, dup := questionIndex[q.ID]; dup {
			panic(fmt.Sprintf("quiz: duplicate question id %q", q.ID))
		}
		questionIndex[q.ID] = i
		if !q.Screening() {
			categoryMax[q.Category] += q.Weight * q.MaxPoints()
		}
	}
}

// Questions returns the full question bank in presentation order. The
// result is a deep copy; editing it never affects scoring.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	for i, q := range questionBank {
		out[i] = q.clone()
	}
	return out
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	q.Labels = slices.Clone(q.Labels)
	return q
}

// QuestionByID returns the question with the given ID.
func QuestionByID(id string) (Question, bool) {
	i, ok := questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return questionBank[i].clone(), true
}

// QuestionsFor returns the scored questions of one category.
func QuestionsFor(c Category) []Question {
	var out []Question
	for _, q := range questionBank {
		if q.Category == c {
			out = append(out, q.clone())
		}
	}
	return out
}
