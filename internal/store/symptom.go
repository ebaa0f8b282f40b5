package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type symptomLogRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var symptomSelect = []string{colID, colSequence, colLoggedAt, colMeal, colRating, colNote}

func (r *symptomLogRepo) Append(ctx context.Context, e *SymptomEntry) error {
	e.Meal = strings.TrimSpace(e.Meal)
	if e.Meal == "" {
		return fmt.Errorf("append symptom entry: meal is required")
	}
	if e.Rating < 0 || e.Rating > MaxRating {
		return fmt.Errorf("append symptom entry: rating %d outside 0-%d", e.Rating, MaxRating)
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now().UTC()
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	e.Sequence = seq

	q, args := builder().Insert(tableSymptoms).
		Columns(colSequence, colLoggedAt, colMeal, colRating, colNote).
		Values(e.Sequence, e.LoggedAt, e.Meal, e.Rating, e.Note).
		Query()
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("append symptom entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("append symptom entry: %w", err)
	}
	e.ID = int(id)
	return nil
}

func (r *symptomLogRepo) List(ctx context.Context, opts QueryOpts) ([]*SymptomEntry, error) {
	b := builder()
	sel := b.Select(symptomSelect...).
		From(b.Table(tableSymptoms)).
		OrderBy(entsql.Desc(colLoggedAt), entsql.Desc(colSequence))
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colLoggedAt, opts.From))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colLoggedAt, opts.To))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	q, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list symptom entries: %w", err)
	}
	defer rows.Close()

	var out []*SymptomEntry
	for rows.Next() {
		var e SymptomEntry
		if err := rows.Scan(&e.ID, &e.Sequence, &e.LoggedAt, &e.Meal, &e.Rating, &e.Note); err != nil {
			return nil, fmt.Errorf("scan symptom entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// DaySummary is the bloating average for one calendar day.
type DaySummary struct {
	Day     time.Time // midnight in the summary's location
	Entries int
	Average float64
	Worst   int
}

// SummarizeByDay groups entries by calendar day in loc, newest day first.
func SummarizeByDay(entries []*SymptomEntry, loc *time.Location) []DaySummary {
	if loc == nil {
		loc = time.Local
	}
	byDay := map[time.Time]*DaySummary{}
	var order []time.Time
	for _, e := range entries {
		t := e.LoggedAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		s, ok := byDay[day]
		if !ok {
			s = &DaySummary{Day: day}
			byDay[day] = s
			order = append(order, day)
		}
		s.Entries++
		s.Average += float64(e.Rating)
		s.Worst = max(s.Worst, e.Rating)
	}

	out := make([]DaySummary, 0, len(order))
	for _, day := range order {
		s := byDay[day]
		s.Average /= float64(s.Entries)
		out = append(out, *s)
	}
	slices.SortStableFunc(out, func(a, b DaySummary) int {
		return b.Day.Compare(a.Day)
	})
	return out
}
