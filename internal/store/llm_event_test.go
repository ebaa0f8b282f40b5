package store

import (
	"context"
	"errors"
	"testing"
)

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-a", Purpose: "insights", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true, RequestBody: "{}", ResponseBody: `{"summary":"x"}`},
		{Provider: "openai", Model: "gpt-b", Purpose: "insights", InputTokens: 80, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
		{Provider: "anthropic", Model: "claude-a", Purpose: "insights", InputTokens: 120, OutputTokens: 60, LatencyMs: 1100, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].InputTokens != 120 || got[2].ResponseBody != `{"summary":"x"}` {
		t.Error("events are not newest first")
	}
	if got[1].Success || got[1].ErrorMessage != "rate limited" {
		t.Errorf("failed event = %+v", got[1].LLMRequestEventData)
	}

	one, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one.Model != "gpt-b" {
		t.Errorf("model = %q, want gpt-b", one.Model)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit returned %d events", len(limited))
	}
}

func TestLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.EventRepo().GetLLMEvent(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "m2", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Model: "m1", InputTokens: 1, OutputTokens: 2, LatencyMs: 30, Success: false},
		{Model: "m2", InputTokens: 20, OutputTokens: 15, LatencyMs: 200, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	want := []ModelUsage{
		{Model: "m1", Requests: 1, Failures: 1, InputTokens: 1, OutputTokens: 2, LatencyMs: 30},
		{Model: "m2", Requests: 2, Failures: 0, InputTokens: 30, OutputTokens: 20, LatencyMs: 300},
	}
	if len(usage) != len(want) {
		t.Fatalf("got %d rows, want %d", len(usage), len(want))
	}
	for i := range want {
		if usage[i] != want[i] {
			t.Errorf("usage[%d] = %+v, want %+v", i, usage[i], want[i])
		}
	}
}
