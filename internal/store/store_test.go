package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bloatai/bloatiq/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// In-memory databases report journal_mode "memory"; see TestOpenFile.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bloatiq.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	ctx := context.Background()
	if err := s.SymptomLogRepo().Append(ctx, &SymptomEntry{Meal: "oats", Rating: 2}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening migrates again and keeps existing rows.
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	entries, err := s.SymptomLogRepo().List(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries after reopen, want 1", len(entries))
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := &Assessment{Answers: quiz.Answers{}}
	if err := s.AssessmentRepo().Save(ctx, a); err != nil {
		t.Fatalf("save assessment: %v", err)
	}
	e := &SymptomEntry{Meal: "lentil soup", Rating: 6}
	if err := s.SymptomLogRepo().Append(ctx, e); err != nil {
		t.Fatalf("append symptom: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Model: "m"}); err != nil {
		t.Fatalf("append event: %v", err)
	}
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}

	if a.Sequence != 1 || e.Sequence != 2 || events[0].Sequence != 3 {
		t.Errorf("sequences = %d, %d, %d; want 1, 2, 3", a.Sequence, e.Sequence, events[0].Sequence)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.AssessmentRepo().Save(ctx, &Assessment{Answers: quiz.Answers{}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SymptomLogRepo().Append(ctx, &SymptomEntry{Meal: "beans", Rating: 8}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Model: "m"}); err != nil {
		t.Fatalf("append event: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	list, _ := s.AssessmentRepo().List(ctx, QueryOpts{})
	entries, _ := s.SymptomLogRepo().List(ctx, QueryOpts{})
	events, _ := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if len(list)+len(entries)+len(events) != 0 {
		t.Errorf("reset left %d assessments, %d entries, %d events", len(list), len(entries), len(events))
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom", "x.db")
		t.Setenv("BLOATIQ_DB", want)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("BLOATIQ_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if want := filepath.Join(dir, "bloatiq", "bloatiq.db"); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestSummarizeByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	entries := []*SymptomEntry{
		{LoggedAt: day2.Add(3 * time.Hour), Rating: 2},
		{LoggedAt: day1.Add(10 * time.Hour), Rating: 9},
		{LoggedAt: day1, Rating: 3},
	}

	got := SummarizeByDay(entries, time.UTC)
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	if !got[0].Day.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first day = %v, want 2026-03-02", got[0].Day)
	}
	if got[1].Entries != 2 || got[1].Average != 6 || got[1].Worst != 9 {
		t.Errorf("day1 summary = %+v", got[1])
	}
}

func TestErrNotFoundIsSentinel(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AssessmentRepo().Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
