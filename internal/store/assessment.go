package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/bloatai/bloatiq/internal/quiz"
)

// assessmentRepo implements AssessmentRepo with ent's SQL builder.
type assessmentRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var assessmentSelect = []string{
	colID, colSequence, colCreatedAt, colAnswers, colCategoryScores,
	colOverallScore, colRiskLevel, colTopCauses, colRedFlags, colNote,
}

func (r *assessmentRepo) Save(ctx context.Context, a *Assessment) error {
	if a.Answers == nil {
		return fmt.Errorf("save assessment: %w", quiz.ErrNilAnswers)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Sequence == 0 {
		seq, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		a.Sequence = seq
	}

	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	scores, err := json.Marshal(a.Result.CategoryScores)
	if err != nil {
		return fmt.Errorf("marshal category scores: %w", err)
	}
	causes, err := json.Marshal(nonNil(a.Result.TopCauses))
	if err != nil {
		return fmt.Errorf("marshal top causes: %w", err)
	}
	flags, err := json.Marshal(nonNil(a.Result.RedFlags))
	if err != nil {
		return fmt.Errorf("marshal red flags: %w", err)
	}

	q, args := builder().Insert(tableAssessments).
		Columns(assessmentSelect...).
		Values(a.ID, a.Sequence, a.CreatedAt, string(answers), string(scores),
			a.Result.OverallScore, string(a.Result.RiskLevel), string(causes), string(flags), a.Note).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*Assessment, error) {
	b := builder()
	q, args := b.Select(assessmentSelect...).
		From(b.Table(tableAssessments)).
		Where(entsql.EQ(colID, id)).
		Limit(1).
		Query()
	list, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return list[0], nil
}

func (r *assessmentRepo) List(ctx context.Context, opts QueryOpts) ([]*Assessment, error) {
	b := builder()
	sel := b.Select(assessmentSelect...).
		From(b.Table(tableAssessments)).
		OrderBy(entsql.Desc(colSequence))
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colCreatedAt, opts.From))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colCreatedAt, opts.To))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	q, args := sel.Query()
	list, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return list, nil
}

func (r *assessmentRepo) Previous(ctx context.Context, a *Assessment) (*Assessment, error) {
	b := builder()
	q, args := b.Select(assessmentSelect...).
		From(b.Table(tableAssessments)).
		Where(entsql.LT(colSequence, a.Sequence)).
		OrderBy(entsql.Desc(colSequence)).
		Limit(1).
		Query()
	list, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("previous assessment: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *assessmentRepo) query(ctx context.Context, q string, args []any) ([]*Assessment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssessment(rows *sql.Rows) (*Assessment, error) {
	var (
		a                              Assessment
		risk                           string
		answers, scores, causes, flags []byte
	)
	err := rows.Scan(&a.ID, &a.Sequence, &a.CreatedAt, &answers, &scores,
		&a.Result.OverallScore, &risk, &causes, &flags, &a.Note)
	if err != nil {
		return nil, fmt.Errorf("scan assessment: %w", err)
	}
	a.Result.RiskLevel = quiz.RiskLevel(risk)

	if err := errors.Join(
		json.Unmarshal(answers, &a.Answers),
		json.Unmarshal(scores, &a.Result.CategoryScores),
		json.Unmarshal(causes, &a.Result.TopCauses),
		json.Unmarshal(flags, &a.Result.RedFlags),
	); err != nil {
		return nil, fmt.Errorf("decode assessment %s: %w", a.ID, err)
	}
	return &a, nil
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
