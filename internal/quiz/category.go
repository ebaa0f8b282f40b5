package quiz

// Category is a physiological root-cause bucket for bloating.
type Category string

const (
	CategoryAerophagia Category = "aerophagia"
	CategoryBrainGut   Category = "brain_gut"
	CategoryDysbiosis  Category = "dysbiosis"
	CategoryHormonal   Category = "hormonal"
	CategoryLifestyle  Category = "lifestyle"
	CategoryMotility   Category = "motility"
	CategoryStructural Category = "structural"
)

// allCategories is the canonical category list. Its order is the tie-break
// priority used when ranking causes.
var allCategories = []Category{
	CategoryAerophagia,
	CategoryBrainGut,
	CategoryDysbiosis,
	CategoryHormonal,
	CategoryLifestyle,
	CategoryMotility,
	CategoryStructural,
}

// AllCategories returns every category in priority order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryDisplayNames maps each category to its human-readable label.
var CategoryDisplayNames = map[Category]string{
	CategoryAerophagia: "Aerophagia (Swallowed Air)",
	CategoryBrainGut:   "Brain-Gut Axis",
	CategoryDysbiosis:  "Gut Dysbiosis",
	CategoryHormonal:   "Hormonal",
	CategoryLifestyle:  "Lifestyle & Diet",
	CategoryMotility:   "Motility",
	CategoryStructural: "Structural",
}

// DisplayName returns the label shown to users.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAerophagia, CategoryBrainGut, CategoryDysbiosis, CategoryHormonal,
		CategoryLifestyle, CategoryMotility, CategoryStructural:
		return CategoryDisplayNames[c]
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range allCategories {
		if k == c {
			return true
		}
	}
	return false
}

// priority returns the tie-break rank of c (lower wins).
func (c Category) priority() int {
	for i, k := range allCategories {
		if k == c {
			return i
		}
	}
	return len(allCategories)
}
