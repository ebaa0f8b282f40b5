package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is one completed quiz with its computed result.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned on save"),
		field.Time("created_at").
			Immutable(),
		field.JSON("answers", map[string]any{}).
			Comment("Raw answers keyed by question ID"),
		field.JSON("category_scores", map[string]int{}),
		field.Int("overall_score"),
		field.String("risk_level").
			Comment("low, moderate or high"),
		field.JSON("top_causes", []string{}),
		field.JSON("red_flags", []string{}),
		field.String("note").
			Default(""),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
