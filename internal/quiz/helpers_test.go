package quiz

// minValue returns the least severe answer for q.
func minValue(q Question) any {
	switch q.Kind {
	case KindScale:
		return 0
	case KindYesNo:
		return false
	default:
		return q.Options[0].ID
	}
}

// maxValue returns the most severe answer for q.
func maxValue(q Question) any {
	switch q.Kind {
	case KindScale:
		return ScaleMax
	case KindYesNo:
		return true
	default:
		return q.Options[len(q.Options)-1].ID
	}
}

// allValues lists every answer for q from least to most severe.
func allValues(q Question) []any {
	switch q.Kind {
	case KindScale:
		out := make([]any, 0, ScaleMax+1)
		for i := 0; i <= ScaleMax; i++ {
			out = append(out, i)
		}
		return out
	case KindYesNo:
		return []any{false, true}
	default:
		out := make([]any, 0, len(q.Options))
		for _, o := range q.Options {
			out = append(out, o.ID)
		}
		return out
	}
}

func fill(pick func(Question) any) Answers {
	a := Answers{}
	for _, q := range Questions() {
		a[q.ID] = pick(q)
	}
	return a
}

func minAnswers() Answers { return fill(minValue) }
func maxAnswers() Answers { return fill(maxValue) }

// withScreening returns a copy of a with every screening question set by pick.
func withScreening(a Answers, pick func(Question) any) Answers {
	out := Answers{}
	for k, v := range a {
		out[k] = v
	}
	for _, q := range Questions() {
		if q.Screening() {
			out[q.ID] = pick(q)
		}
	}
	return out
}
