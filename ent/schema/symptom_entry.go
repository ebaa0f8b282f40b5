package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SymptomEntry is one meal logged with a 0-10 discomfort rating.
type SymptomEntry struct {
	ent.Schema
}

func (SymptomEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (SymptomEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Time("logged_at").
			Immutable(),
		field.String("meal"),
		field.Int("rating"),
		field.String("note").
			Default(""),
	}
}

func (SymptomEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("logged_at"),
	}
}
