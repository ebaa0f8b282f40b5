package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10}},
	)
	mock.Enqueue(MockResponse{Content: json.RawMessage(`{"b":2}`)})

	first, err := mock.Generate(context.Background(), Prompt("sys", "one", nil, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"a":1}` || first.Usage.InputTokens != 10 {
		t.Fatalf("first = %s %+v", first.Content, first.Usage)
	}
	second, err := mock.Generate(context.Background(), Prompt("", "two", nil, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"b":2}` {
		t.Fatalf("second = %s", second.Content)
	}

	calls := mock.Calls()
	if len(calls) != 2 || calls[0].System != "sys" || calls[1].Messages[0].Content != "two" {
		t.Fatalf("calls = %+v", calls)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue: got %T, want ErrProviderUnavailable", err)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"name":"x"}`)})
	_, err := mock.Generate(context.Background(), Prompt("", "", testSchema(), 0))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("got %T, want ErrInvalidResponse", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != PurposeUnknown {
		t.Fatalf("PurposeFrom(empty) = %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposeInsights)); p != PurposeInsights {
		t.Fatalf("PurposeFrom = %q, want %q", p, PurposeInsights)
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		ok    bool
		input float64
	}{
		{"gpt-4o-mini", true, 0.15},
		{"claude-haiku", true, 1},
		{"google/gemini-2.5-flash", true, 0.3},
		{"mock", false, 0},
	}
	for _, tt := range tests {
		c, ok := LookupCost(tt.model)
		if ok != tt.ok || c.InputPerMTok != tt.input {
			t.Errorf("LookupCost(%q) = %+v, %v", tt.model, c, ok)
		}
	}

	if got := (ModelCost{InputPerMTok: 1, OutputPerMTok: 5}).Cost(1_000_000, 200_000); got != 2 {
		t.Errorf("Cost = %v, want 2", got)
	}
}
