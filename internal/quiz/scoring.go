package quiz

import (
	"errors"
	"math"
	"slices"
	"sort"
)

// ErrNilAnswers is returned when the engine is handed a nil answer set.
var ErrNilAnswers = errors.New("quiz: answers must not be nil")

// Answers maps question IDs to raw answer values: numbers for scale
// questions, option IDs for choice questions, booleans for yes/no questions.
type Answers map[string]any

// Unrecognized returns the sorted IDs in a that are not in the question bank.
// They are ignored during scoring.
func (a Answers) Unrecognized() []string {
	var out []string
	for id := range a {
		if _, ok := questionIndex[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// CategoryScores holds one score in [0, 100] per category.
type CategoryScores map[Category]int

// RiskLevel is an ordered severity tier derived from the overall score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Lower bounds (inclusive) of the moderate and high tiers.
const (
	ModerateThreshold = 30
	HighThreshold     = 60
)

// Rank orders risk levels: low < moderate < high.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	default:
		return 0
	}
}

// DefaultTopCauses is how many causes GetTopCauses is usually asked for.
const DefaultTopCauses = 2

// CalculateQuizScores computes a normalized score for every category.
// Each answered question contributes weight*points; the sum is normalized
// against the category's maximum weighted score. Unknown IDs, missing answers
// and unreadable values contribute nothing.
func CalculateQuizScores(answers Answers) (CategoryScores, error) {
	if answers == nil {
		return nil, ErrNilAnswers
	}

	raw := make(map[Category]int, len(allCategories))
	for _, q := range questionBank {
		if q.Screening() {
			continue
		}
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		pts, ok := q.Points(v)
		if !ok {
			continue
		}
		raw[q.Category] += q.Weight * pts
	}

	scores := make(CategoryScores, len(allCategories))
	for _, c := range allCategories {
		scores[c] = normalize(raw[c], categoryMax[c])
	}
	return scores, nil
}

func normalize(raw, maxRaw int) int {
	if maxRaw <= 0 {
		return 0
	}
	s := int(math.Round(100 * float64(raw) / float64(maxRaw)))
	return min(max(s, 0), 100)
}

// CalculateOverallScore is the unweighted mean of all category scores,
// rounded to the nearest integer. A category missing from scores counts as 0.
func CalculateOverallScore(scores CategoryScores) int {
	sum := 0
	for _, c := range allCategories {
		sum += scores[c]
	}
	return int(math.Round(float64(sum) / float64(len(allCategories))))
}

// GetRiskLevel maps an overall score to its tier. Tiers are [0,30) low,
// [30,60) moderate and [60,100] high.
func GetRiskLevel(overall int) RiskLevel {
	switch {
	case overall >= HighThreshold:
		return RiskHigh
	case overall >= ModerateThreshold:
		return RiskModerate
	default:
		return RiskLow
	}
}

// GetTopCauses returns the n highest-scoring categories, best first. Equal
// scores fall back to category priority.
func GetTopCauses(scores CategoryScores, n int) []Category {
	if n <= 0 {
		return []Category{}
	}
	ranked := AllCategories()
	slices.SortFunc(ranked, func(a, b Category) int {
		if d := scores[b] - scores[a]; d != 0 {
			return d
		}
		return a.priority() - b.priority()
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
