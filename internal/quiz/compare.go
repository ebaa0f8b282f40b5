package quiz

// CategoryDelta is the change in one category between two assessments.
type CategoryDelta struct {
	Category Category
	Previous int
	Current  int
}

// Change is Current minus Previous. Negative means improvement.
func (d CategoryDelta) Change() int {
	return d.Current - d.Previous
}

// Compare lists per-category changes from prev to cur in priority order.
func Compare(prev, cur CategoryScores) []CategoryDelta {
	out := make([]CategoryDelta, 0, len(allCategories))
	for _, c := range allCategories {
		out = append(out, CategoryDelta{Category: c, Previous: prev[c], Current: cur[c]})
	}
	return out
}

// MostImproved returns the category with the largest drop, or false when no
// category improved. Ties keep priority order.
func MostImproved(deltas []CategoryDelta) (CategoryDelta, bool) {
	var best CategoryDelta
	found := false
	for _, d := range deltas {
		if d.Change() < 0 && (!found || d.Change() < best.Change()) {
			best, found = d, true
		}
	}
	return best, found
}
