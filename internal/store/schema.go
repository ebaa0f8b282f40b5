package store

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/bloatai/bloatiq/ent/schema"
)

const (
	tableAssessments = "assessments"
	tableSymptoms    = "symptom_entries"
	tableLLMEvents   = "llm_request_events"
)

// Columns shared by every table.
const (
	colID       = "id"
	colSequence = "sequence"
)

// Assessment columns.
const (
	colCreatedAt      = "created_at"
	colAnswers        = "answers"
	colCategoryScores = "category_scores"
	colOverallScore   = "overall_score"
	colRiskLevel      = "risk_level"
	colTopCauses      = "top_causes"
	colRedFlags       = "red_flags"
	colNote           = "note"
)

// Symptom entry columns.
const (
	colLoggedAt = "logged_at"
	colMeal     = "meal"
	colRating   = "rating"
)

// LLM request event columns.
const (
	colTimestamp    = "timestamp"
	colProvider     = "provider"
	colModel        = "model"
	colPurpose      = "purpose"
	colInputTokens  = "input_tokens"
	colOutputTokens = "output_tokens"
	colLatencyMs    = "latency_ms"
	colSuccess      = "success"
	colErrorMessage = "error_message"
	colRequestBody  = "request_body"
	colResponseBody = "response_body"
)

// tables is built once from the ent schema definitions.
var tables = mustTables(
	tableSpec{tableAssessments, entschema.Assessment{}},
	tableSpec{tableSymptoms, entschema.SymptomEntry{}},
	tableSpec{tableLLMEvents, entschema.LLMRequestEvent{}},
)

type tableSpec struct {
	name string
	def  ent.Interface
}

func mustTables(specs ...tableSpec) []*schema.Table {
	out := make([]*schema.Table, 0, len(specs))
	for _, s := range specs {
		t, err := tableFor(s.name, s.def)
		if err != nil {
			panic(err)
		}
		out = append(out, t)
	}
	return out
}

// tableFor turns an ent schema into a migratable table. Mixin fields come
// right after the ID; schemas without an "id" field get an auto-increment
// integer key. Index names follow ent's <type>_<fields> convention.
func tableFor(name string, def ent.Interface) (*schema.Table, error) {
	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range def.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	t := &schema.Table{Name: name}
	byName := map[string]*schema.Column{}
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("table %s: field %s: %w", name, d.Name, d.Err)
		}
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional || d.Nillable,
			Size:     int64(d.Size),
		}
		if d.StorageKey != "" {
			col.Name = d.StorageKey
		}
		// Func defaults like time.Now are applied by the repos.
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			col.Default = d.Default
		}
		if d.Name == colID {
			t.PrimaryKey = []*schema.Column{col}
		}
		byName[d.Name] = col
		t.Columns = append(t.Columns, col)
	}
	if t.PrimaryKey == nil {
		id := &schema.Column{Name: colID, Type: field.TypeInt, Increment: true}
		t.Columns = append([]*schema.Column{id}, t.Columns...)
		t.PrimaryKey = []*schema.Column{id}
	} else if t.Columns[0] != t.PrimaryKey[0] {
		rest := slices.DeleteFunc(slices.Clone(t.Columns), func(c *schema.Column) bool { return c == t.PrimaryKey[0] })
		t.Columns = append([]*schema.Column{t.PrimaryKey[0]}, rest...)
	}

	typeName := strings.ToLower(reflect.TypeOf(def).Name())
	for _, i := range indexes {
		d := i.Descriptor()
		idx := &schema.Index{Name: d.StorageKey, Unique: d.Unique}
		if idx.Name == "" {
			idx.Name = typeName + "_" + strings.Join(d.Fields, "_")
		}
		for _, fn := range d.Fields {
			col, ok := byName[fn]
			if !ok {
				return nil, fmt.Errorf("table %s: index on unknown field %q", name, fn)
			}
			idx.Columns = append(idx.Columns, col)
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t, nil
}

// migrate creates or updates all tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

// builder returns an ent SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
