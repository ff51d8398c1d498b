package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIComplete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": "reply"}}},
		})
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test")
	p.endpoint = srv.URL

	temp := 0.7
	out, err := p.Complete(context.Background(), CompletionRequest{
		Model:       "gpt-5-mini",
		System:      "sys",
		User:        "usr",
		Temperature: &temp,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out != "reply" {
		t.Errorf("content = %q", out)
	}
	if got.Model != "gpt-5-mini" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Temperature == nil || *got.Temperature != 0.7 {
		t.Error("temperature not forwarded")
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("messages = %v, want system then user", got.Messages)
	}
}

func TestOpenAIComplete_OmitsTemperatureWhenNil(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test")
	p.endpoint = srv.URL

	if _, err := p.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"}); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if _, present := raw["temperature"]; present {
		t.Error("temperature field sent despite provider-default policy")
	}
}

func TestOpenAIComplete_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test")
	p.endpoint = srv.URL

	_, err := p.Complete(context.Background(), CompletionRequest{Model: "m"})
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
	if pe.Error() != "OpenAI 429: rate limited" {
		t.Errorf("error = %q", pe.Error())
	}
}

func TestOpenAIComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test")
	p.endpoint = srv.URL

	if _, err := p.Complete(context.Background(), CompletionRequest{Model: "m"}); err == nil {
		t.Error("expected error for empty choices")
	}
}
