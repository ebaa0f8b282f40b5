package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo backed by the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var llmEventSelect = []string{
	colID, colSequence, colTimestamp, colProvider, colModel, colPurpose,
	colInputTokens, colOutputTokens, colLatencyMs, colSuccess,
	colErrorMessage, colRequestBody, colResponseBody,
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := builder().Insert(tableLLMEvents).
		Columns(llmEventSelect[1:]...).
		Values(seqNum, time.Now().UTC(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	b := builder()
	sel := b.Select(llmEventSelect...).
		From(b.Table(tableLLMEvents)).
		OrderBy(entsql.Desc(colSequence))
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, opts.From))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, opts.To))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	q, args := sel.Query()
	events, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	b := builder()
	q, args := b.Select(llmEventSelect...).
		From(b.Table(tableLLMEvents)).
		Where(entsql.EQ(colID, id)).
		Query()
	events, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events[0], nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	b := builder()
	q, args := b.Select(
		colModel,
		entsql.Count("*"),
		"SUM(CASE WHEN "+colSuccess+" THEN 0 ELSE 1 END)",
		entsql.Sum(colInputTokens),
		entsql.Sum(colOutputTokens),
		entsql.Sum(colLatencyMs),
	).
		From(b.Table(tableLLMEvents)).
		GroupBy(colModel).
		OrderBy(colModel).
		Query()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.Failures, &u.InputTokens, &u.OutputTokens, &u.LatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) query(ctx context.Context, q string, args []any) ([]*LLMRequestEvent, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
