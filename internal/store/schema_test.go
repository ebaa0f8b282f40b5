package store

import (
	"database/sql"
	"slices"
	"testing"

	entschema "github.com/bloatai/bloatiq/ent/schema"
)

func TestMigratedColumnsFollowEntSchema(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		table string
		want  []string
		pk    string
	}{
		{tableAssessments, assessmentSelect, colID},
		{tableSymptoms, symptomSelect, colID},
		{tableLLMEvents, []string{
			colID, colSequence, colTimestamp, colProvider, colModel, colPurpose,
			colInputTokens, colOutputTokens, colLatencyMs, colSuccess,
			colErrorMessage, colRequestBody, colResponseBody,
		}, colID},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			rows, err := s.DB().Query("PRAGMA table_info(" + tt.table + ")")
			if err != nil {
				t.Fatalf("table_info: %v", err)
			}
			defer rows.Close()

			var got []string
			var pk string
			for rows.Next() {
				var (
					cid, notNull, isPK int
					name, typ          string
					dflt               sql.NullString
				)
				if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &isPK); err != nil {
					t.Fatalf("scan: %v", err)
				}
				got = append(got, name)
				if isPK == 1 {
					pk = name
				}
			}
			if err := rows.Err(); err != nil {
				t.Fatalf("rows: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("columns = %v, want %v", got, tt.want)
			}
			if pk != tt.pk {
				t.Errorf("primary key = %q, want %q", pk, tt.pk)
			}
		})
	}
}

func TestMigratedIndexNames(t *testing.T) {
	s := openTestStore(t)

	want := map[string][]string{
		tableAssessments: {"assessment_created_at"},
		tableSymptoms:    {"symptomentry_logged_at"},
		tableLLMEvents:   {"llmrequestevent_purpose", "llmrequestevent_timestamp"},
	}
	for table, names := range want {
		for _, name := range names {
			var n int
			err := s.DB().QueryRow(
				`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND tbl_name = ? AND name = ?`,
				table, name,
			).Scan(&n)
			if err != nil {
				t.Fatalf("lookup index %s: %v", name, err)
			}
			if n != 1 {
				t.Errorf("index %s on %s missing", name, table)
			}
		}
	}
}

func TestTableFor_AddsIntegerKeyWhenSchemaHasNoID(t *testing.T) {
	tbl, err := tableFor(tableSymptoms, entschema.SymptomEntry{})
	if err != nil {
		t.Fatalf("tableFor: %v", err)
	}
	id := tbl.Columns[0]
	if id.Name != colID || !id.Increment {
		t.Errorf("first column = %+v, want auto-increment id", id)
	}
	if tbl.PrimaryKey[0] != id {
		t.Error("primary key is not the id column")
	}
	for _, c := range tbl.Columns {
		if c.Name == colNote && c.Default != "" {
			t.Errorf("note default = %v, want empty string", c.Default)
		}
	}
}

func TestTableFor_MovesStringIDFirst(t *testing.T) {
	tbl, err := tableFor(tableAssessments, entschema.Assessment{})
	if err != nil {
		t.Fatalf("tableFor: %v", err)
	}
	if tbl.Columns[0].Name != colID || tbl.Columns[1].Name != colSequence {
		t.Errorf("leading columns = %s, %s; want id, sequence", tbl.Columns[0].Name, tbl.Columns[1].Name)
	}
	for _, c := range tbl.Columns {
		if c.Name == colCreatedAt && c.Default != nil {
			t.Errorf("created_at default = %v, want none", c.Default)
		}
	}
}
