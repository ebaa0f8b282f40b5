package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatCompletion(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	var got map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		chatCompletion(`{"name":"Bo","age":41}`, "stop")(w, r)
	})

	resp, err := p.Generate(context.Background(), Prompt("sys", "user", testSchema(), 128))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.TotalTokens != 65 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v, want json_schema", format)
	}
}

func TestOpenAIProvider_LengthFinish(t *testing.T) {
	p := newTestOpenAIProvider(t, chatCompletion(`{"na`, "length"))

	_, err := p.Generate(context.Background(), Prompt("", "x", testSchema(), 4))
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"gpt-4o-mini","choices":[]}`))
	})

	_, err := p.Generate(context.Background(), Prompt("", "x", nil, 16))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusBadGateway, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			w.Write([]byte(`{"error":{"message":"nope","type":"server_error"}}`))
		})
		_, err := p.Generate(context.Background(), Prompt("", "x", nil, 16))
		if !tt.check(err) {
			t.Errorf("status %d mapped to %T (%v)", tt.status, err, err)
		}
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("defaults base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "meta-llama/llama-3-8b" {
			t.Errorf("model = %q", p.ModelID())
		}
	})

	t.Run("requires key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(ProviderConfig{Model: "x"}); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		server := httptest.NewServer(chatCompletion(`hello`, "stop"))
		defer server.Close()

		p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "k", Model: "x/y", BaseURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := p.Generate(context.Background(), Prompt("", "hi", nil, 16))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if string(resp.Content) != "hello" {
			t.Errorf("content = %s", resp.Content)
		}
	})
}
